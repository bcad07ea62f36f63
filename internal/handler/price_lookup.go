package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 4 * time.Hour

// PriceLookupHandler serves the public price check endpoint. Read only,
// no authentication required.
type PriceLookupHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceLookupHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceLookupHandler {
	return &PriceLookupHandler{repo: repo, rdb: rdb}
}

// GetPorCodigo godoc
// @Summary Consulta de precio por codigo de producto (sin autenticacion)
// @Tags price
// @Produce json
// @Param code path string true "Codigo del producto"
// @Success 200 {object} dto.PriceLookupResponse
// @Failure 404 {object} apierror.NotFoundError
// @Router /v1/price/{code} [get]
func (h *PriceLookupHandler) GetPorCodigo(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()
	cacheKey := "price:" + code

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceLookupResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	product, err := h.repo.ObtenerPorCodigo(ctx, code)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NewNotFound("producto"))
		return
	}

	resp := dto.PriceLookupResponse{
		Name:              product.Name,
		UnitPrice:         product.UnitPrice,
		HigherPrice:       product.HigherPrice,
		Stock:             product.Stock,
		PromotionDiscount: product.PromotionDiscount,
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
