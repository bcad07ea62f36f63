package service

import (
	"context"
	"errors"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	Crear(ctx context.Context, req dto.CrearProductRequest) (*dto.ProductResponse, error)
	Listar(ctx context.Context) (*dto.ProductListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductRequest) (*dto.ProductResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		IDCategories:      p.IDCategories,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		UnitPrice:         p.UnitPrice,
		HigherPrice:       p.HigherPrice,
		Stock:             p.Stock,
		ExpirationDate:    p.ExpirationDate,
		PromotionDiscount: p.PromotionDiscount,
		State:             p.State,
	}
}

func (s *productService) validarCategoria(ctx context.Context, idCategories uint) error {
	ok, err := s.categoryRepo.Existe(ctx, idCategories)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.NewFieldValidation("id_categories", "la categoria no existe")
	}
	return nil
}

func (s *productService) Crear(ctx context.Context, req dto.CrearProductRequest) (*dto.ProductResponse, error) {
	if err := s.validarCategoria(ctx, req.IDCategories); err != nil {
		return nil, err
	}
	if existing, err := s.repo.ObtenerPorCodigo(ctx, req.Code); err == nil && existing != nil {
		return nil, apierror.NewFieldValidation("code", "el codigo ya esta registrado")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	expiration, err := parseDate("expiration_date", req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		IDCategories:      req.IDCategories,
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		UnitPrice:         req.UnitPrice,
		HigherPrice:       req.HigherPrice,
		Stock:             req.Stock,
		ExpirationDate:    expiration,
		PromotionDiscount: req.PromotionDiscount,
		State:             req.State,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, translateWrite(err, "el codigo ya esta registrado")
	}
	resp := mapProduct(*p)
	return &resp, nil
}

// Listar returns the catalog plus the categories the create/edit form needs.
func (s *productService) Listar(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductListResponse{
		Products:   make([]dto.ProductResponse, 0, len(products)),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, mapProduct(p))
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, mapCategory(c))
	}
	return resp, nil
}

// Actualizar overwrites every field except code, which is immutable.
func (s *productService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "producto")
	}
	if err := s.validarCategoria(ctx, req.IDCategories); err != nil {
		return nil, err
	}

	expiration, err := parseDate("expiration_date", req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	p.IDCategories = req.IDCategories
	p.Name = req.Name
	p.Description = req.Description
	p.UnitPrice = req.UnitPrice
	p.HigherPrice = req.HigherPrice
	p.Stock = req.Stock
	p.ExpirationDate = expiration
	p.PromotionDiscount = req.PromotionDiscount
	p.State = req.State

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "producto")
	}
	return s.repo.Eliminar(ctx, id)
}
