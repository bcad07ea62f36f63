package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

// PromotionRepository exposes Tx variants for the bundle rebuild: the
// delete-then-insert sequence must run inside one transaction so a failed
// insert never leaves the bundle half-deleted.
type PromotionRepository interface {
	Crear(ctx context.Context, p *model.Promotion) error
	CrearTx(tx *gorm.DB, p *model.Promotion) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Promotion, error)
	Listar(ctx context.Context) ([]model.Promotion, error)
	EliminarPorNombreTx(tx *gorm.DB, namePromotion string) error

	// DB exposes the underlying *gorm.DB so the service can open transactions.
	DB() *gorm.DB
}

type promotionRepo struct{ db *gorm.DB }

func NewPromotionRepository(db *gorm.DB) PromotionRepository { return &promotionRepo{db: db} }

func (r *promotionRepo) Crear(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *promotionRepo) CrearTx(tx *gorm.DB, p *model.Promotion) error {
	return tx.Create(p).Error
}

func (r *promotionRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *promotionRepo) Listar(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	err := r.db.WithContext(ctx).Order("id ASC").Find(&promotions).Error
	return promotions, err
}

// EliminarPorNombreTx removes every row of the bundle identified by name.
func (r *promotionRepo) EliminarPorNombreTx(tx *gorm.DB, namePromotion string) error {
	return tx.Where("name_promotion = ?", namePromotion).Delete(&model.Promotion{}).Error
}

func (r *promotionRepo) DB() *gorm.DB { return r.db }
