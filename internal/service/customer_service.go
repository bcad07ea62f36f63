package service

import (
	"context"
	"errors"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	Crear(ctx context.Context, req dto.CrearCustomerRequest) (*dto.CustomerResponse, error)
	Listar(ctx context.Context) ([]dto.CustomerResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCustomerRequest) (*dto.CustomerResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func mapCustomer(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:       c.ID,
		DNI:      c.DNI,
		Name:     c.Name,
		LastName: c.LastName,
		Birthday: c.Birthday,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		Score:    c.Score,
		State:    c.State,
	}
}

func (s *customerService) Crear(ctx context.Context, req dto.CrearCustomerRequest) (*dto.CustomerResponse, error) {
	if existing, err := s.repo.ObtenerPorDNI(ctx, req.DNI); err == nil && existing != nil {
		return nil, apierror.NewFieldValidation("dni", "el dni ya esta registrado")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing, err := s.repo.ObtenerPorEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apierror.NewFieldValidation("email", "el email ya esta registrado")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	birthday, err := parseDate("birthday", req.Birthday)
	if err != nil {
		return nil, err
	}

	c := &model.Customer{
		DNI:      req.DNI,
		Name:     req.Name,
		LastName: req.LastName,
		Birthday: birthday,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Score:    req.Score,
		State:    req.State,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, translateWrite(err, "el dni o email ya esta registrado")
	}
	resp := mapCustomer(*c)
	return &resp, nil
}

func (s *customerService) Listar(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, mapCustomer(c))
	}
	return result, nil
}

// Actualizar overwrites the mutable fields; dni and email are identity
// fields and stay as created.
func (s *customerService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "cliente")
	}

	birthday, err := parseDate("birthday", req.Birthday)
	if err != nil {
		return nil, err
	}

	c.Name = req.Name
	c.LastName = req.LastName
	c.Birthday = birthday
	c.Phone = req.Phone
	c.Address = req.Address
	c.Score = req.Score
	c.State = req.State

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCustomer(*c)
	return &resp, nil
}

func (s *customerService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "cliente")
	}
	return s.repo.Eliminar(ctx, id)
}
