package service_test

import (
	"context"
	"testing"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crearProviderReq(productID uint) dto.CrearProviderRequest {
	return dto.CrearProviderRequest{
		IDProducts:          productID,
		RUC:                 "20609876543",
		CompanyName:         "Comercial del Sur EIRL",
		ContactPerson:       "Ana Torres",
		Phone:               955667788,
		Email:               "contacto@comercialsur.pe",
		Address:             "Av. Panamericana 1200",
		Category:            "wholesaler",
		DescriptionProducts: "Granos y menestras",
		Status:              "active",
	}
}

func providerFixture(t *testing.T) (service.ProviderService, *stubProviderRepo, uint) {
	t.Helper()
	catRepo := newStubCategoryRepo()
	cat := seedCategory(catRepo)
	productRepo := newStubProductRepo()
	p := seedProduct(productRepo, "PRD-001", cat.ID)
	repo := newStubProviderRepo()
	return service.NewProviderService(repo, productRepo), repo, p.ID
}

func TestProviderCrear(t *testing.T) {
	svc, repo, productID := providerFixture(t)

	resp, err := svc.Crear(context.Background(), crearProviderReq(productID))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "20609876543", resp.RUC)
	assert.Len(t, repo.providers, 1)
}

func TestProviderCrearProductoNoExiste(t *testing.T) {
	svc, repo, _ := providerFixture(t)

	_, err := svc.Crear(context.Background(), crearProviderReq(88))
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_products")
	assert.Empty(t, repo.providers)
}

func TestProviderActualizar(t *testing.T) {
	svc, _, productID := providerFixture(t)

	created, err := svc.Crear(context.Background(), crearProviderReq(productID))
	require.NoError(t, err)

	req := crearProviderReq(productID)
	req.CompanyName = "Comercial del Sur SAC"
	req.Status = "inactive"
	resp, err := svc.Actualizar(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Comercial del Sur SAC", resp.CompanyName)
	assert.Equal(t, "inactive", resp.Status)
}

func TestProviderEliminarNoExiste(t *testing.T) {
	svc, _, _ := providerFixture(t)

	err := svc.Eliminar(context.Background(), 12)
	var nferr *apierror.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
