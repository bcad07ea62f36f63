package handler

import (
	"net/http"

	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Crear godoc
// @Summary Registrar una venta
// @Tags sales
// @Accept json
// @Produce json
// @Param body body dto.CrearSaleRequest true "Datos de la venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 422 {object} apierror.ValidationError
// @Failure 409 {object} apierror.ConstraintError
// @Router /v1/sales [post]
func (h *SalesHandler) Crear(c *gin.Context) {
	var req dto.CrearSaleRequest
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

// Listar GET /v1/sales
// Includes customer and user catalogs for the sales register screen.
func (h *SalesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/sales/:id
// voucher_number, id_users and date_time are fixed at registration.
func (h *SalesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarSaleRequest
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

// Eliminar DELETE /v1/sales/:id
func (h *SalesHandler) Eliminar(c *gin.Context) {
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

// Voucher godoc
// @Summary Descargar el comprobante PDF de la venta
// @Tags sales
// @Produce application/pdf
// @Param id path int true "ID de la venta"
// @Success 200 {file} file
// @Failure 404 {object} apierror.NotFoundError
// @Router /v1/sales/{id}/voucher [get]
func (h *SalesHandler) Voucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, err := h.svc.GenerarVoucher(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "voucher.pdf")
}

// EnviarVoucher POST /v1/sales/:id/send-voucher
// Queues the receipt email; delivery happens on the worker pool.
func (h *SalesHandler) EnviarVoucher(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.EnviarVoucher(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
