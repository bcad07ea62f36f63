package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type BranchRepository interface {
	Crear(ctx context.Context, b *model.Branch) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Branch, error)
	Listar(ctx context.Context) ([]model.Branch, error)
	Actualizar(ctx context.Context, b *model.Branch) error
	Eliminar(ctx context.Context, id uint) error
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func (r *branchRepo) Crear(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

// Listar preloads the managing user so the listing can show it.
func (r *branchRepo) Listar(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).Preload("User").Order("id ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) Actualizar(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *branchRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Branch{}, id).Error
}
