package service

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
)

// CategoryService defines business operations for product categories.
type CategoryService interface {
	Crear(ctx context.Context, req dto.CrearCategoryRequest) (*dto.CategoryResponse, error)
	Listar(ctx context.Context) ([]dto.CategoryResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearCategoryRequest) (*dto.CategoryResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func (s *categoryService) Crear(ctx context.Context, req dto.CrearCategoryRequest) (*dto.CategoryResponse, error) {
	c := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Listar(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) Actualizar(ctx context.Context, id uint, req dto.CrearCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "categoria")
	}
	c.Name = req.Name
	c.Description = req.Description
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "categoria")
	}
	return s.repo.Eliminar(ctx, id)
}
