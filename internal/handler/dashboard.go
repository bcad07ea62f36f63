package handler

import (
	"net/http"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler aggregates the counters behind the admin landing page.
type DashboardHandler struct {
	db       *gorm.DB
	saleRepo repository.SaleRepository
}

func NewDashboardHandler(db *gorm.DB, saleRepo repository.SaleRepository) *DashboardHandler {
	return &DashboardHandler{db: db, saleRepo: saleRepo}
}

// Get GET /v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	var resp dto.DashboardResponse

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&model.User{}, &resp.Users},
		{&model.Branch{}, &resp.Branches},
		{&model.Customer{}, &resp.Customers},
		{&model.Product{}, &resp.Products},
		{&model.Provider{}, &resp.Providers},
		{&model.Promotion{}, &resp.Promotions},
		{&model.Sale{}, &resp.Sales},
		{&model.Buy{}, &resp.Buys},
	}
	for _, cnt := range counts {
		if err := h.db.WithContext(ctx).Model(cnt.model).Count(cnt.dst).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	total, err := h.saleRepo.TotalDesde(ctx, startOfDay)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.SalesToday = total

	c.JSON(http.StatusOK, resp)
}
