package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Crear(ctx context.Context, c *model.Category) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Category, error)
	Listar(ctx context.Context) ([]model.Category, error)
	Actualizar(ctx context.Context, c *model.Category) error
	Eliminar(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Crear(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *categoryRepo) Listar(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Actualizar(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *categoryRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
