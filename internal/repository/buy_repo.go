package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type BuyRepository interface {
	Crear(ctx context.Context, b *model.Buy) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Buy, error)
	ObtenerPorVoucher(ctx context.Context, voucherNumber string) (*model.Buy, error)
	Listar(ctx context.Context) ([]model.Buy, error)
	Actualizar(ctx context.Context, b *model.Buy) error
	Eliminar(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type buyRepo struct{ db *gorm.DB }

func NewBuyRepository(db *gorm.DB) BuyRepository { return &buyRepo{db: db} }

func (r *buyRepo) Crear(ctx context.Context, b *model.Buy) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *buyRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Buy, error) {
	var b model.Buy
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *buyRepo) ObtenerPorVoucher(ctx context.Context, voucherNumber string) (*model.Buy, error) {
	var b model.Buy
	err := r.db.WithContext(ctx).Where("voucher_number = ?", voucherNumber).First(&b).Error
	return &b, err
}

func (r *buyRepo) Listar(ctx context.Context) ([]model.Buy, error) {
	var buys []model.Buy
	err := r.db.WithContext(ctx).Order("id ASC").Find(&buys).Error
	return buys, err
}

func (r *buyRepo) Actualizar(ctx context.Context, b *model.Buy) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *buyRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Buy{}, id).Error
}

func (r *buyRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Buy{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
