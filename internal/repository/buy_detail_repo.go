package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type BuyDetailRepository interface {
	Crear(ctx context.Context, d *model.BuyDetail) error
	ObtenerPorID(ctx context.Context, id uint) (*model.BuyDetail, error)
	Listar(ctx context.Context) ([]model.BuyDetail, error)
	Actualizar(ctx context.Context, d *model.BuyDetail) error
	Eliminar(ctx context.Context, id uint) error
}

type buyDetailRepo struct{ db *gorm.DB }

func NewBuyDetailRepository(db *gorm.DB) BuyDetailRepository { return &buyDetailRepo{db: db} }

func (r *buyDetailRepo) Crear(ctx context.Context, d *model.BuyDetail) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *buyDetailRepo) ObtenerPorID(ctx context.Context, id uint) (*model.BuyDetail, error) {
	var d model.BuyDetail
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *buyDetailRepo) Listar(ctx context.Context) ([]model.BuyDetail, error) {
	var details []model.BuyDetail
	err := r.db.WithContext(ctx).Order("id ASC").Find(&details).Error
	return details, err
}

func (r *buyDetailRepo) Actualizar(ctx context.Context, d *model.BuyDetail) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *buyDetailRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.BuyDetail{}, id).Error
}
