package service

import (
	"context"
	"errors"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"gorm.io/gorm"
)

type BuyService interface {
	Crear(ctx context.Context, req dto.CrearBuyRequest) (*dto.BuyResponse, error)
	Listar(ctx context.Context) (*dto.BuyListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarBuyRequest) (*dto.BuyResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type buyService struct {
	repo         repository.BuyRepository
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
}

func NewBuyService(
	repo repository.BuyRepository,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
) BuyService {
	return &buyService{repo: repo, providerRepo: providerRepo, userRepo: userRepo}
}

func mapBuy(b model.Buy) dto.BuyResponse {
	return dto.BuyResponse{
		ID:            b.ID,
		IDProvider:    b.IDProvider,
		IDUsers:       b.IDUsers,
		VoucherNumber: b.VoucherNumber,
		Total:         b.Total,
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		DateTime:      b.DateTime,
	}
}

func (s *buyService) Crear(ctx context.Context, req dto.CrearBuyRequest) (*dto.BuyResponse, error) {
	if ok, err := s.providerRepo.Existe(ctx, req.IDProvider); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.NewFieldValidation("id_provider", "el proveedor no existe")
	}
	if ok, err := s.userRepo.Existe(ctx, req.IDUsers); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.NewFieldValidation("id_users", "el usuario no existe")
	}
	if existing, err := s.repo.ObtenerPorVoucher(ctx, req.VoucherNumber); err == nil && existing != nil {
		return nil, apierror.NewFieldValidation("voucher_number", "el numero de comprobante ya esta registrado")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	b := &model.Buy{
		IDProvider:    req.IDProvider,
		IDUsers:       req.IDUsers,
		VoucherNumber: req.VoucherNumber,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		DateTime:      time.Now(),
	}
	if err := s.repo.Crear(ctx, b); err != nil {
		return nil, translateWrite(err, "el numero de comprobante ya esta registrado")
	}
	resp := mapBuy(*b)
	return &resp, nil
}

func (s *buyService) Listar(ctx context.Context) (*dto.BuyListResponse, error) {
	buys, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := s.providerRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.BuyListResponse{
		Buys:      make([]dto.BuyResponse, 0, len(buys)),
		Providers: make([]dto.ProviderResponse, 0, len(providers)),
		Users:     make([]dto.UserResponse, 0, len(users)),
	}
	for _, b := range buys {
		resp.Buys = append(resp.Buys, mapBuy(b))
	}
	for _, p := range providers {
		resp.Providers = append(resp.Providers, mapProvider(p))
	}
	for _, u := range users {
		resp.Users = append(resp.Users, mapUser(u))
	}
	return resp, nil
}

// Actualizar overwrites the mutable fields; voucher_number, id_users and
// date_time are fixed at registration.
func (s *buyService) Actualizar(ctx context.Context, id uint, req dto.ActualizarBuyRequest) (*dto.BuyResponse, error) {
	b, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "compra")
	}
	if ok, err := s.providerRepo.Existe(ctx, req.IDProvider); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.NewFieldValidation("id_provider", "el proveedor no existe")
	}

	b.IDProvider = req.IDProvider
	b.Total = req.Total
	b.PaymentMethod = req.PaymentMethod
	b.PaymentStatus = req.PaymentStatus

	if err := s.repo.Actualizar(ctx, b); err != nil {
		return nil, err
	}
	resp := mapBuy(*b)
	return &resp, nil
}

func (s *buyService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "compra")
	}
	return s.repo.Eliminar(ctx, id)
}
