package service

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
)

type BranchService interface {
	Crear(ctx context.Context, req dto.CrearBranchRequest) (*dto.BranchResponse, error)
	Listar(ctx context.Context) (*dto.BranchListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearBranchRequest) (*dto.BranchResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type branchService struct {
	repo     repository.BranchRepository
	userRepo repository.UserRepository
}

func NewBranchService(repo repository.BranchRepository, userRepo repository.UserRepository) BranchService {
	return &branchService{repo: repo, userRepo: userRepo}
}

func mapBranch(b model.Branch) dto.BranchResponse {
	resp := dto.BranchResponse{
		ID:          b.ID,
		IDUsers:     b.IDUsers,
		Name:        b.Name,
		Address:     b.Address,
		OpeningTime: b.OpeningTime,
		ClosingTime: b.ClosingTime,
		State:       b.State,
	}
	if b.User != nil {
		resp.UserName = b.User.Name
	}
	return resp
}

func (s *branchService) validarEncargado(ctx context.Context, idUsers uint) error {
	ok, err := s.userRepo.Existe(ctx, idUsers)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.NewFieldValidation("id_users", "el usuario encargado no existe")
	}
	return nil
}

func (s *branchService) Crear(ctx context.Context, req dto.CrearBranchRequest) (*dto.BranchResponse, error) {
	if err := s.validarEncargado(ctx, req.IDUsers); err != nil {
		return nil, err
	}
	b := &model.Branch{
		IDUsers:     req.IDUsers,
		Name:        req.Name,
		Address:     req.Address,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		State:       req.State,
	}
	if err := s.repo.Crear(ctx, b); err != nil {
		return nil, err
	}
	resp := mapBranch(*b)
	return &resp, nil
}

// Listar returns all branches plus the user options the selector needs.
func (s *branchService) Listar(ctx context.Context) (*dto.BranchListResponse, error) {
	branches, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.BranchListResponse{
		Branches: make([]dto.BranchResponse, 0, len(branches)),
		Users:    make([]dto.UserOption, 0, len(users)),
	}
	for _, b := range branches {
		resp.Branches = append(resp.Branches, mapBranch(b))
	}
	for _, u := range users {
		resp.Users = append(resp.Users, dto.UserOption{ID: u.ID, Name: u.Name})
	}
	return resp, nil
}

func (s *branchService) Actualizar(ctx context.Context, id uint, req dto.CrearBranchRequest) (*dto.BranchResponse, error) {
	b, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "sucursal")
	}
	if err := s.validarEncargado(ctx, req.IDUsers); err != nil {
		return nil, err
	}

	b.IDUsers = req.IDUsers
	b.Name = req.Name
	b.Address = req.Address
	b.OpeningTime = req.OpeningTime
	b.ClosingTime = req.ClosingTime
	b.State = req.State

	if err := s.repo.Actualizar(ctx, b); err != nil {
		return nil, err
	}
	resp := mapBranch(*b)
	return &resp, nil
}

func (s *branchService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "sucursal")
	}
	return s.repo.Eliminar(ctx, id)
}
