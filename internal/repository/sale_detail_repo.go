package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type SaleDetailRepository interface {
	Crear(ctx context.Context, d *model.SaleDetail) error
	ObtenerPorID(ctx context.Context, id uint) (*model.SaleDetail, error)
	Listar(ctx context.Context) ([]model.SaleDetail, error)
	Actualizar(ctx context.Context, d *model.SaleDetail) error
	Eliminar(ctx context.Context, id uint) error
}

type saleDetailRepo struct{ db *gorm.DB }

func NewSaleDetailRepository(db *gorm.DB) SaleDetailRepository { return &saleDetailRepo{db: db} }

func (r *saleDetailRepo) Crear(ctx context.Context, d *model.SaleDetail) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *saleDetailRepo) ObtenerPorID(ctx context.Context, id uint) (*model.SaleDetail, error) {
	var d model.SaleDetail
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *saleDetailRepo) Listar(ctx context.Context) ([]model.SaleDetail, error) {
	var details []model.SaleDetail
	err := r.db.WithContext(ctx).Order("id ASC").Find(&details).Error
	return details, err
}

func (r *saleDetailRepo) Actualizar(ctx context.Context, d *model.SaleDetail) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *saleDetailRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SaleDetail{}, id).Error
}
