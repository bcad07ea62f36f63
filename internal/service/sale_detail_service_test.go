package service_test

import (
	"context"
	"testing"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleDetailFixture(t *testing.T) (service.SaleDetailService, *stubSaleDetailRepo, uint, uint) {
	t.Helper()
	catRepo := newStubCategoryRepo()
	cat := seedCategory(catRepo)
	productRepo := newStubProductRepo()
	p := seedProduct(productRepo, "PRD-001", cat.ID)

	customerRepo := newStubCustomerRepo()
	c := seedCustomer(customerRepo, "74185296", "cliente@gmail.com")
	userRepo := newStubUserRepo()
	u := seedUser(userRepo, "cajero@minimarket.com", "cashier")
	saleRepo := newStubSaleRepo()
	sale := seedSale(saleRepo, c.ID, u.ID, "T001-00000020")

	repo := newStubSaleDetailRepo()
	return service.NewSaleDetailService(repo, saleRepo, productRepo), repo, sale.ID, p.ID
}

func TestSaleDetailCrear(t *testing.T) {
	svc, repo, saleID, productID := saleDetailFixture(t)

	resp, err := svc.Crear(context.Background(), dto.CrearSaleDetailRequest{
		IDSales:    saleID,
		IDProducts: productID,
		Quantity:   3,
		Discount:   decimal.NewFromFloat(0.50),
		SubTotal:   decimal.NewFromFloat(13.00),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 3, resp.Quantity)
	assert.Len(t, repo.details, 1)
}

func TestSaleDetailCrearReferenciasInvalidas(t *testing.T) {
	svc, repo, saleID, productID := saleDetailFixture(t)

	_, err := svc.Crear(context.Background(), dto.CrearSaleDetailRequest{
		IDSales:    999,
		IDProducts: productID,
		Quantity:   1,
	})
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_sales")

	_, err = svc.Crear(context.Background(), dto.CrearSaleDetailRequest{
		IDSales:    saleID,
		IDProducts: 999,
		Quantity:   1,
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_products")
	assert.Empty(t, repo.details)
}

func TestSaleDetailActualizar(t *testing.T) {
	svc, _, saleID, productID := saleDetailFixture(t)

	created, err := svc.Crear(context.Background(), dto.CrearSaleDetailRequest{
		IDSales:    saleID,
		IDProducts: productID,
		Quantity:   1,
		SubTotal:   decimal.NewFromFloat(4.50),
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), created.ID, dto.CrearSaleDetailRequest{
		IDSales:    saleID,
		IDProducts: productID,
		Quantity:   5,
		SubTotal:   decimal.NewFromFloat(22.50),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Quantity)
	assert.True(t, resp.SubTotal.Equal(decimal.NewFromFloat(22.50)))
}

func TestSaleDetailEliminarNoExiste(t *testing.T) {
	svc, _, _, _ := saleDetailFixture(t)

	err := svc.Eliminar(context.Background(), 123)
	var nferr *apierror.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
