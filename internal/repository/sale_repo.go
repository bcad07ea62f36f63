package repository

import (
	"context"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Crear(ctx context.Context, s *model.Sale) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Sale, error)
	ObtenerPorVoucher(ctx context.Context, voucherNumber string) (*model.Sale, error)
	Listar(ctx context.Context) ([]model.Sale, error)
	Actualizar(ctx context.Context, s *model.Sale) error
	Eliminar(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
	TotalDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Crear(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Details").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) ObtenerPorVoucher(ctx context.Context, voucherNumber string) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Where("voucher_number = ?", voucherNumber).First(&s).Error
	return &s, err
}

func (r *saleRepo) Listar(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("id ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Actualizar(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *saleRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// TotalDesde sums sale totals registered at or after the given instant.
func (r *saleRepo) TotalDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("date_time >= ?", desde).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
