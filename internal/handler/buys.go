package handler

import (
	"net/http"

	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/gin-gonic/gin"
)

type BuysHandler struct{ svc service.BuyService }

func NewBuysHandler(svc service.BuyService) *BuysHandler { return &BuysHandler{svc: svc} }

// Crear godoc
// @Summary Registrar una compra a proveedor
// @Tags buys
// @Accept json
// @Produce json
// @Param body body dto.CrearBuyRequest true "Datos de la compra"
// @Success 201 {object} dto.BuyResponse
// @Failure 422 {object} apierror.ValidationError
// @Failure 409 {object} apierror.ConstraintError
// @Router /v1/buys [post]
func (h *BuysHandler) Crear(c *gin.Context) {
	var req dto.CrearBuyRequest
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

// Listar GET /v1/buys
func (h *BuysHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/buys/:id
// voucher_number, id_users and date_time are fixed at registration.
func (h *BuysHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarBuyRequest
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

// Eliminar DELETE /v1/buys/:id
func (h *BuysHandler) Eliminar(c *gin.Context) {
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
