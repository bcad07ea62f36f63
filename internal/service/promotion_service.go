package service

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"gorm.io/gorm"
)

// PromotionService manages promotion bundles. A bundle is the set of rows
// sharing one name_promotion value; create inserts one row per item, and
// update rebuilds the whole bundle (delete by the captured current name,
// re-insert the new item set) inside a single transaction so a failure can
// never leave the bundle half-deleted.
type PromotionService interface {
	Crear(ctx context.Context, req dto.CrearPromotionRequest) ([]dto.PromotionResponse, error)
	Listar(ctx context.Context) (*dto.PromotionListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearPromotionRequest) ([]dto.PromotionResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type promotionService struct {
	repo        repository.PromotionRepository
	productRepo repository.ProductRepository
}

func NewPromotionService(repo repository.PromotionRepository, productRepo repository.ProductRepository) PromotionService {
	return &promotionService{repo: repo, productRepo: productRepo}
}

func mapPromotion(p model.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:            p.ID,
		IDProducts:    p.IDProducts,
		NamePromotion: p.NamePromotion,
		Price:         p.Price,
		State:         p.State,
	}
}

// validarItems checks every referenced product exists before any write.
func (s *promotionService) validarItems(ctx context.Context, items []dto.PromotionItemInput) error {
	for _, item := range items {
		ok, err := s.productRepo.Existe(ctx, item.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apierror.NewFieldValidation("item", "el producto referenciado no existe")
		}
	}
	return nil
}

// construirFilas builds one promotion row per item, all sharing the bundle
// name/price/state.
func construirFilas(req dto.CrearPromotionRequest) []model.Promotion {
	rows := make([]model.Promotion, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, model.Promotion{
			IDProducts:    item.ID,
			NamePromotion: req.NamePromotion,
			Price:         req.Price,
			State:         req.State,
		})
	}
	return rows
}

func (s *promotionService) Crear(ctx context.Context, req dto.CrearPromotionRequest) ([]dto.PromotionResponse, error) {
	if err := s.validarItems(ctx, req.Items); err != nil {
		return nil, err
	}

	rows := construirFilas(req)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range rows {
			if err := s.repo.CrearTx(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	result := make([]dto.PromotionResponse, 0, len(rows))
	for _, p := range rows {
		result = append(result, mapPromotion(p))
	}
	return result, nil
}

// Listar returns every promotion row plus the product options (id, name,
// unit price, current discount) the bundle selector needs.
func (s *promotionService) Listar(ctx context.Context) (*dto.PromotionListResponse, error) {
	promotions, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.PromotionListResponse{
		Promotions: make([]dto.PromotionResponse, 0, len(promotions)),
		Products:   make([]dto.ProductOption, 0, len(products)),
	}
	for _, p := range promotions {
		resp.Promotions = append(resp.Promotions, mapPromotion(p))
	}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.ProductOption{
			ID:                p.ID,
			Name:              p.Name,
			UnitPrice:         p.UnitPrice,
			PromotionDiscount: p.PromotionDiscount,
		})
	}
	return resp, nil
}

// Actualizar rebuilds the bundle the row id belongs to. The rebuild key is
// the row's CURRENT name (captured before validation), so renaming a bundle
// replaces the old rows rather than orphaning them. Note the bundle key is
// a display name: two bundles created with the same name are rebuilt as one.
func (s *promotionService) Actualizar(ctx context.Context, id uint, req dto.CrearPromotionRequest) ([]dto.PromotionResponse, error) {
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "promocion")
	}
	oldName := existing.NamePromotion

	if err := s.validarItems(ctx, req.Items); err != nil {
		return nil, err
	}

	rows := construirFilas(req)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.EliminarPorNombreTx(tx, oldName); err != nil {
			return err
		}
		for i := range rows {
			if err := s.repo.CrearTx(tx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	result := make([]dto.PromotionResponse, 0, len(rows))
	for _, p := range rows {
		result = append(result, mapPromotion(p))
	}
	return result, nil
}

// Eliminar removes the whole bundle the row id belongs to.
func (s *promotionService) Eliminar(ctx context.Context, id uint) error {
	existing, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return lookupErr(err, "promocion")
	}
	name := existing.NamePromotion

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.EliminarPorNombreTx(tx, name)
	})
}
