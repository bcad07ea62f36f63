package service

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
)

type ProviderService interface {
	Crear(ctx context.Context, req dto.CrearProviderRequest) (*dto.ProviderResponse, error)
	Listar(ctx context.Context) (*dto.ProviderListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearProviderRequest) (*dto.ProviderResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type providerService struct {
	repo        repository.ProviderRepository
	productRepo repository.ProductRepository
}

func NewProviderService(repo repository.ProviderRepository, productRepo repository.ProductRepository) ProviderService {
	return &providerService{repo: repo, productRepo: productRepo}
}

func mapProvider(p model.Provider) dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:                  p.ID,
		IDProducts:          p.IDProducts,
		RUC:                 p.RUC,
		CompanyName:         p.CompanyName,
		ContactPerson:       p.ContactPerson,
		Phone:               p.Phone,
		Email:               p.Email,
		Address:             p.Address,
		Category:            p.Category,
		DescriptionProducts: p.DescriptionProducts,
		Status:              p.Status,
	}
}

func (s *providerService) validarProducto(ctx context.Context, idProducts uint) error {
	ok, err := s.productRepo.Existe(ctx, idProducts)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.NewFieldValidation("id_products", "el producto no existe")
	}
	return nil
}

func (s *providerService) Crear(ctx context.Context, req dto.CrearProviderRequest) (*dto.ProviderResponse, error) {
	if err := s.validarProducto(ctx, req.IDProducts); err != nil {
		return nil, err
	}
	p := &model.Provider{
		IDProducts:          req.IDProducts,
		RUC:                 req.RUC,
		CompanyName:         req.CompanyName,
		ContactPerson:       req.ContactPerson,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		Category:            req.Category,
		DescriptionProducts: req.DescriptionProducts,
		Status:              req.Status,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProvider(*p)
	return &resp, nil
}

func (s *providerService) Listar(ctx context.Context) (*dto.ProviderListResponse, error) {
	providers, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProviderListResponse{
		Providers: make([]dto.ProviderResponse, 0, len(providers)),
		Products:  make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range providers {
		resp.Providers = append(resp.Providers, mapProvider(p))
	}
	for _, p := range products {
		resp.Products = append(resp.Products, mapProduct(p))
	}
	return resp, nil
}

func (s *providerService) Actualizar(ctx context.Context, id uint, req dto.CrearProviderRequest) (*dto.ProviderResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "proveedor")
	}
	if err := s.validarProducto(ctx, req.IDProducts); err != nil {
		return nil, err
	}

	p.IDProducts = req.IDProducts
	p.RUC = req.RUC
	p.CompanyName = req.CompanyName
	p.ContactPerson = req.ContactPerson
	p.Phone = req.Phone
	p.Email = req.Email
	p.Address = req.Address
	p.Category = req.Category
	p.DescriptionProducts = req.DescriptionProducts
	p.Status = req.Status

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProvider(*p)
	return &resp, nil
}

func (s *providerService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "proveedor")
	}
	return s.repo.Eliminar(ctx, id)
}
