package handler

import (
	"net/http"

	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/gin-gonic/gin"
)

type BuyDetailsHandler struct{ svc service.BuyDetailService }

func NewBuyDetailsHandler(svc service.BuyDetailService) *BuyDetailsHandler {
	return &BuyDetailsHandler{svc: svc}
}

// Crear POST /v1/buy-details
func (h *BuyDetailsHandler) Crear(c *gin.Context) {
	var req dto.CrearBuyDetailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/buy-details
func (h *BuyDetailsHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/buy-details/:id
func (h *BuyDetailsHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CrearBuyDetailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/buy-details/:id
func (h *BuyDetailsHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
