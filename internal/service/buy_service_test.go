package service_test

import (
	"context"
	"testing"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProvider(repo *stubProviderRepo, productID uint) *model.Provider {
	p := &model.Provider{
		IDProducts:          productID,
		RUC:                 "20512345678",
		CompanyName:         "Distribuidora Andina SAC",
		ContactPerson:       "Luis Paredes",
		Phone:               987112233,
		Email:               "ventas@andina.pe",
		Address:             "Av. Industrial 500",
		Category:            "distributor",
		DescriptionProducts: "Abarrotes al por mayor",
		Status:              "active",
	}
	_ = repo.Crear(context.Background(), p)
	return p
}

type buyFixture struct {
	svc        service.BuyService
	repo       *stubBuyRepo
	providerID uint
	userID     uint
}

func newBuyFixture(t *testing.T) *buyFixture {
	t.Helper()
	providerRepo := newStubProviderRepo()
	p := seedProvider(providerRepo, 1)
	userRepo := newStubUserRepo()
	u := seedUser(userRepo, "logistica@minimarket.com", "logistic")
	repo := newStubBuyRepo()
	svc := service.NewBuyService(repo, providerRepo, userRepo)
	return &buyFixture{svc: svc, repo: repo, providerID: p.ID, userID: u.ID}
}

func (f *buyFixture) crearReq(voucher string) dto.CrearBuyRequest {
	return dto.CrearBuyRequest{
		IDProvider:    f.providerID,
		IDUsers:       f.userID,
		VoucherNumber: voucher,
		Total:         decimal.NewFromFloat(480.00),
		PaymentMethod: "card",
		PaymentStatus: "pending",
	}
}

func TestBuyCrear(t *testing.T) {
	f := newBuyFixture(t)

	resp, err := f.svc.Crear(context.Background(), f.crearReq("F001-00000010"))
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.False(t, resp.DateTime.IsZero())
}

func TestBuyCrearReferenciasInvalidas(t *testing.T) {
	f := newBuyFixture(t)

	req := f.crearReq("F001-00000011")
	req.IDProvider = 99
	_, err := f.svc.Crear(context.Background(), req)
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_provider")

	req = f.crearReq("F001-00000011")
	req.IDUsers = 99
	_, err = f.svc.Crear(context.Background(), req)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "id_users")
}

func TestBuyCrearVoucherDuplicado(t *testing.T) {
	f := newBuyFixture(t)

	_, err := f.svc.Crear(context.Background(), f.crearReq("F001-00000012"))
	require.NoError(t, err)

	_, err = f.svc.Crear(context.Background(), f.crearReq("F001-00000012"))
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "voucher_number")
	assert.Len(t, f.repo.buys, 1)
}

func TestBuyActualizarConservaIdentidadDelComprobante(t *testing.T) {
	f := newBuyFixture(t)

	created, err := f.svc.Crear(context.Background(), f.crearReq("F001-00000013"))
	require.NoError(t, err)

	resp, err := f.svc.Actualizar(context.Background(), created.ID, dto.ActualizarBuyRequest{
		IDProvider:    f.providerID,
		Total:         decimal.NewFromFloat(520.00),
		PaymentMethod: "cash",
		PaymentStatus: "delivered",
	})
	require.NoError(t, err)
	assert.Equal(t, "delivered", resp.PaymentStatus)
	assert.Equal(t, "F001-00000013", resp.VoucherNumber)
	assert.Equal(t, created.IDUsers, resp.IDUsers)
	assert.Equal(t, created.DateTime, resp.DateTime)
}

func TestBuyEliminar(t *testing.T) {
	f := newBuyFixture(t)

	created, err := f.svc.Crear(context.Background(), f.crearReq("F001-00000014"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Eliminar(context.Background(), created.ID))
	assert.Empty(t, f.repo.buys)

	err = f.svc.Eliminar(context.Background(), created.ID)
	var nferr *apierror.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
