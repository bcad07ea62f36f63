package service

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
)

type SaleDetailService interface {
	Crear(ctx context.Context, req dto.CrearSaleDetailRequest) (*dto.SaleDetailResponse, error)
	Listar(ctx context.Context) (*dto.SaleDetailListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearSaleDetailRequest) (*dto.SaleDetailResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type saleDetailService struct {
	repo        repository.SaleDetailRepository
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewSaleDetailService(
	repo repository.SaleDetailRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) SaleDetailService {
	return &saleDetailService{repo: repo, saleRepo: saleRepo, productRepo: productRepo}
}

func mapSaleDetail(d model.SaleDetail) dto.SaleDetailResponse {
	return dto.SaleDetailResponse{
		ID:         d.ID,
		IDSales:    d.IDSales,
		IDProducts: d.IDProducts,
		Quantity:   d.Quantity,
		Discount:   d.Discount,
		SubTotal:   d.SubTotal,
	}
}

func (s *saleDetailService) validarReferencias(ctx context.Context, idSales, idProducts uint) error {
	if ok, err := s.saleRepo.Existe(ctx, idSales); err != nil {
		return err
	} else if !ok {
		return apierror.NewFieldValidation("id_sales", "la venta no existe")
	}
	if ok, err := s.productRepo.Existe(ctx, idProducts); err != nil {
		return err
	} else if !ok {
		return apierror.NewFieldValidation("id_products", "el producto no existe")
	}
	return nil
}

func (s *saleDetailService) Crear(ctx context.Context, req dto.CrearSaleDetailRequest) (*dto.SaleDetailResponse, error) {
	if err := s.validarReferencias(ctx, req.IDSales, req.IDProducts); err != nil {
		return nil, err
	}
	d := &model.SaleDetail{
		IDSales:    req.IDSales,
		IDProducts: req.IDProducts,
		Quantity:   req.Quantity,
		Discount:   req.Discount,
		SubTotal:   req.SubTotal,
	}
	if err := s.repo.Crear(ctx, d); err != nil {
		return nil, err
	}
	resp := mapSaleDetail(*d)
	return &resp, nil
}

func (s *saleDetailService) Listar(ctx context.Context) (*dto.SaleDetailListResponse, error) {
	details, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleDetailListResponse{
		SaleDetails: make([]dto.SaleDetailResponse, 0, len(details)),
		Sales:       make([]dto.SaleResponse, 0, len(sales)),
		Products:    make([]dto.ProductResponse, 0, len(products)),
	}
	for _, d := range details {
		resp.SaleDetails = append(resp.SaleDetails, mapSaleDetail(d))
	}
	for _, sale := range sales {
		resp.Sales = append(resp.Sales, mapSale(sale))
	}
	for _, p := range products {
		resp.Products = append(resp.Products, mapProduct(p))
	}
	return resp, nil
}

func (s *saleDetailService) Actualizar(ctx context.Context, id uint, req dto.CrearSaleDetailRequest) (*dto.SaleDetailResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "detalle de venta")
	}
	if err := s.validarReferencias(ctx, req.IDSales, req.IDProducts); err != nil {
		return nil, err
	}

	d.IDSales = req.IDSales
	d.IDProducts = req.IDProducts
	d.Quantity = req.Quantity
	d.Discount = req.Discount
	d.SubTotal = req.SubTotal

	if err := s.repo.Actualizar(ctx, d); err != nil {
		return nil, err
	}
	resp := mapSaleDetail(*d)
	return &resp, nil
}

func (s *saleDetailService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "detalle de venta")
	}
	return s.repo.Eliminar(ctx, id)
}
