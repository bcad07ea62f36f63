package service

import (
	"context"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
)

type BuyDetailService interface {
	Crear(ctx context.Context, req dto.CrearBuyDetailRequest) (*dto.BuyDetailResponse, error)
	Listar(ctx context.Context) (*dto.BuyDetailListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CrearBuyDetailRequest) (*dto.BuyDetailResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type buyDetailService struct {
	repo        repository.BuyDetailRepository
	buyRepo     repository.BuyRepository
	productRepo repository.ProductRepository
}

func NewBuyDetailService(
	repo repository.BuyDetailRepository,
	buyRepo repository.BuyRepository,
	productRepo repository.ProductRepository,
) BuyDetailService {
	return &buyDetailService{repo: repo, buyRepo: buyRepo, productRepo: productRepo}
}

func mapBuyDetail(d model.BuyDetail) dto.BuyDetailResponse {
	return dto.BuyDetailResponse{
		ID:         d.ID,
		IDBuys:     d.IDBuys,
		IDProducts: d.IDProducts,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		SubTotal:   d.SubTotal,
	}
}

func (s *buyDetailService) validarReferencias(ctx context.Context, idBuys, idProducts uint) error {
	if ok, err := s.buyRepo.Existe(ctx, idBuys); err != nil {
		return err
	} else if !ok {
		return apierror.NewFieldValidation("id_buys", "la compra no existe")
	}
	if ok, err := s.productRepo.Existe(ctx, idProducts); err != nil {
		return err
	} else if !ok {
		return apierror.NewFieldValidation("id_products", "el producto no existe")
	}
	return nil
}

func (s *buyDetailService) Crear(ctx context.Context, req dto.CrearBuyDetailRequest) (*dto.BuyDetailResponse, error) {
	if err := s.validarReferencias(ctx, req.IDBuys, req.IDProducts); err != nil {
		return nil, err
	}
	d := &model.BuyDetail{
		IDBuys:     req.IDBuys,
		IDProducts: req.IDProducts,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		SubTotal:   req.SubTotal,
	}
	if err := s.repo.Crear(ctx, d); err != nil {
		return nil, err
	}
	resp := mapBuyDetail(*d)
	return &resp, nil
}

func (s *buyDetailService) Listar(ctx context.Context) (*dto.BuyDetailListResponse, error) {
	details, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	buys, err := s.buyRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.BuyDetailListResponse{
		BuyDetails: make([]dto.BuyDetailResponse, 0, len(details)),
		Buys:       make([]dto.BuyResponse, 0, len(buys)),
		Products:   make([]dto.ProductResponse, 0, len(products)),
	}
	for _, d := range details {
		resp.BuyDetails = append(resp.BuyDetails, mapBuyDetail(d))
	}
	for _, b := range buys {
		resp.Buys = append(resp.Buys, mapBuy(b))
	}
	for _, p := range products {
		resp.Products = append(resp.Products, mapProduct(p))
	}
	return resp, nil
}

func (s *buyDetailService) Actualizar(ctx context.Context, id uint, req dto.CrearBuyDetailRequest) (*dto.BuyDetailResponse, error) {
	d, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "detalle de compra")
	}
	if err := s.validarReferencias(ctx, req.IDBuys, req.IDProducts); err != nil {
		return nil, err
	}

	d.IDBuys = req.IDBuys
	d.IDProducts = req.IDProducts
	d.Quantity = req.Quantity
	d.UnitPrice = req.UnitPrice
	d.SubTotal = req.SubTotal

	if err := s.repo.Actualizar(ctx, d); err != nil {
		return nil, err
	}
	resp := mapBuyDetail(*d)
	return &resp, nil
}

func (s *buyDetailService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "detalle de compra")
	}
	return s.repo.Eliminar(ctx, id)
}
