package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buyDetailFixture(t *testing.T) (service.BuyDetailService, *stubBuyDetailRepo, uint, uint) {
	t.Helper()
	catRepo := newStubCategoryRepo()
	cat := seedCategory(catRepo)
	productRepo := newStubProductRepo()
	p := seedProduct(productRepo, "PRD-001", cat.ID)

	buyRepo := newStubBuyRepo()
	b := &model.Buy{
		IDProvider:    1,
		IDUsers:       1,
		VoucherNumber: "F001-00000030",
		Total:         decimal.NewFromFloat(300.00),
		PaymentMethod: "cash",
		PaymentStatus: "delivered",
		DateTime:      time.Now(),
	}
	require.NoError(t, buyRepo.Crear(context.Background(), b))

	repo := newStubBuyDetailRepo()
	return service.NewBuyDetailService(repo, buyRepo, productRepo), repo, b.ID, p.ID
}

func TestBuyDetailCrear(t *testing.T) {
	svc, repo, buyID, productID := buyDetailFixture(t)

	resp, err := svc.Crear(context.Background(), dto.CrearBuyDetailRequest{
		IDBuys:     buyID,
		IDProducts: productID,
		Quantity:   24,
		UnitPrice:  decimal.NewFromFloat(3.80),
		SubTotal:   decimal.NewFromFloat(91.20),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 24, resp.Quantity)
	assert.Len(t, repo.details, 1)
}

func TestBuyDetailCrearReferenciasInvalidas(t *testing.T) {
	svc, repo, buyID, productID := buyDetailFixture(t)

	_, err := svc.Crear(context.Background(), dto.CrearBuyDetailRequest{
		IDBuys:     999,
		IDProducts: productID,
		Quantity:   1,
	})
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_buys")

	_, err = svc.Crear(context.Background(), dto.CrearBuyDetailRequest{
		IDBuys:     buyID,
		IDProducts: 999,
		Quantity:   1,
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_products")
	assert.Empty(t, repo.details)
}

func TestBuyDetailActualizar(t *testing.T) {
	svc, _, buyID, productID := buyDetailFixture(t)

	created, err := svc.Crear(context.Background(), dto.CrearBuyDetailRequest{
		IDBuys:     buyID,
		IDProducts: productID,
		Quantity:   10,
		UnitPrice:  decimal.NewFromFloat(3.80),
		SubTotal:   decimal.NewFromFloat(38.00),
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), created.ID, dto.CrearBuyDetailRequest{
		IDBuys:     buyID,
		IDProducts: productID,
		Quantity:   12,
		UnitPrice:  decimal.NewFromFloat(3.60),
		SubTotal:   decimal.NewFromFloat(43.20),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Quantity)
	assert.True(t, resp.UnitPrice.Equal(decimal.NewFromFloat(3.60)))
}

func TestBuyDetailEliminarNoExiste(t *testing.T) {
	svc, _, _, _ := buyDetailFixture(t)

	err := svc.Eliminar(context.Background(), 77)
	var nferr *apierror.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
