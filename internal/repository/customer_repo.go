package repository

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Crear(ctx context.Context, c *model.Customer) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Customer, error)
	ObtenerPorDNI(ctx context.Context, dni string) (*model.Customer, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Customer, error)
	Listar(ctx context.Context) ([]model.Customer, error)
	Actualizar(ctx context.Context, c *model.Customer) error
	Eliminar(ctx context.Context, id uint) error
	Existe(ctx context.Context, id uint) (bool, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Crear(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *customerRepo) ObtenerPorDNI(ctx context.Context, dni string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&c).Error
	return &c, err
}

func (r *customerRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return &c, err
}

func (r *customerRepo) Listar(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("id ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Actualizar(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, id).Error
}

func (r *customerRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
