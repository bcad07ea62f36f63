package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type ProviderRepository interface {
	Crear(ctx context.Context, p *model.Provider) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Provider, error)
	Listar(ctx context.Context) ([]model.Provider, error)
	Actualizar(ctx context.Context, p *model.Provider) error
	Eliminar(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type providerRepo struct{ db *gorm.DB }

func NewProviderRepository(db *gorm.DB) ProviderRepository { return &providerRepo{db: db} }

func (r *providerRepo) Crear(ctx context.Context, p *model.Provider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *providerRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Provider, error) {
	var p model.Provider
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *providerRepo) Listar(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.WithContext(ctx).Order("id ASC").Find(&providers).Error
	return providers, err
}

func (r *providerRepo) Actualizar(ctx context.Context, p *model.Provider) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *providerRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Provider{}, id).Error
}

func (r *providerRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Provider{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
