package service

import (
	"context"
	"errors"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// UserService defines business operations for system users.
type UserService interface {
	Crear(ctx context.Context, req dto.CrearUserRequest) (*dto.UserResponse, error)
	Listar(ctx context.Context) ([]dto.UserResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarUserRequest) (*dto.UserResponse, error)
	// Eliminar hard-deletes a user. actorID is the authenticated principal:
	// a user may never delete their own row.
	Eliminar(ctx context.Context, actorID, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func mapUser(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Lastname:       u.Lastname,
		DNI:            u.DNI,
		Phone:          u.Phone,
		Address:        u.Address,
		Email:          u.Email,
		Children:       u.Children,
		Affiliate:      u.Affiliate,
		Insured:        u.Insured,
		WorkModality:   u.WorkModality,
		EntryDate:      u.EntryDate,
		Retention:      u.Retention,
		EntryToPayroll: u.EntryToPayroll,
		Role:           u.Role,
		State:          u.State,
	}
}

func (s *userService) Crear(ctx context.Context, req dto.CrearUserRequest) (*dto.UserResponse, error) {
	// Pre-flight email uniqueness — the DB index backs this up at commit time
	if existing, err := s.repo.ObtenerPorEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apierror.NewFieldValidation("email", "el email ya esta registrado")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entryDate, err := parseDate("entry_date", req.EntryDate)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:           req.Name,
		Lastname:       req.Lastname,
		DNI:            req.DNI,
		Phone:          req.Phone,
		Address:        req.Address,
		Email:          req.Email,
		Password:       string(hash),
		Children:       req.Children,
		Affiliate:      req.Affiliate,
		Insured:        req.Insured,
		WorkModality:   req.WorkModality,
		EntryDate:      entryDate,
		Retention:      req.Retention,
		EntryToPayroll: req.EntryToPayroll,
		Role:           req.Role,
		State:          req.State,
	}
	if err := s.repo.Crear(ctx, u); err != nil {
		return nil, translateWrite(err, "el email ya esta registrado")
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Listar(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapUser(u))
	}
	return result, nil
}

func (s *userService) Actualizar(ctx context.Context, id uint, req dto.ActualizarUserRequest) (*dto.UserResponse, error) {
	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "usuario")
	}

	// Email uniqueness excluding the row being updated
	if req.Email != u.Email {
		if existing, err := s.repo.ObtenerPorEmail(ctx, req.Email); err == nil && existing != nil && existing.ID != id {
			return nil, apierror.NewFieldValidation("email", "el email ya esta registrado")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	entryDate, err := parseDate("entry_date", req.EntryDate)
	if err != nil {
		return nil, err
	}

	u.Name = req.Name
	u.Lastname = req.Lastname
	u.DNI = req.DNI
	u.Phone = req.Phone
	u.Address = req.Address
	u.Email = req.Email
	u.Children = req.Children
	u.Affiliate = req.Affiliate
	u.Insured = req.Insured
	u.WorkModality = req.WorkModality
	u.EntryDate = entryDate
	u.Retention = req.Retention
	u.EntryToPayroll = req.EntryToPayroll
	u.Role = req.Role
	u.State = req.State

	// Password is only overwritten when the payload carries one
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}

	if err := s.repo.Actualizar(ctx, u); err != nil {
		return nil, translateWrite(err, "el email ya esta registrado")
	}
	resp := mapUser(*u)
	return &resp, nil
}

func (s *userService) Eliminar(ctx context.Context, actorID, id uint) error {
	u, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return lookupErr(err, "usuario")
	}
	if u.ID == actorID {
		return apierror.NewForbidden("No puedes eliminar tu propio usuario.")
	}
	return s.repo.Eliminar(ctx, id)
}
