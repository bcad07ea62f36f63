package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"
	"github.com/catvAlbuss/minimarketsystem/internal/dto"
	"github.com/catvAlbuss/minimarketsystem/internal/infra"
	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"
	"github.com/catvAlbuss/minimarketsystem/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// defaultIGV is applied when the payload omits the tax rate.
var defaultIGV = decimal.NewFromFloat(0.18)

type SaleService interface {
	Crear(ctx context.Context, req dto.CrearSaleRequest) (*dto.SaleResponse, error)
	Listar(ctx context.Context) (*dto.SaleListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarSaleRequest) (*dto.SaleResponse, error)
	Eliminar(ctx context.Context, id uint) error

	// GenerarVoucher renders the sale receipt PDF and returns its path.
	GenerarVoucher(ctx context.Context, id uint) (string, error)
	// EnviarVoucher renders the receipt and queues an email with it
	// attached for the sale's customer.
	EnviarVoucher(ctx context.Context, id uint) (*dto.SendVoucherResponse, error)
}

type saleService struct {
	repo         repository.SaleRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	dispatcher   *worker.Dispatcher
	pdfPath      string
}

func NewSaleService(
	repo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) SaleService {
	return &saleService{
		repo:         repo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		dispatcher:   dispatcher,
		pdfPath:      pdfPath,
	}
}

func mapSale(s model.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		IDCustomers:   s.IDCustomers,
		IDUsers:       s.IDUsers,
		VoucherNumber: s.VoucherNumber,
		IGV:           s.IGV,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Voucher:       s.Voucher,
		Document:      s.Document,
		DateTime:      s.DateTime,
	}
}

func (s *saleService) Crear(ctx context.Context, req dto.CrearSaleRequest) (*dto.SaleResponse, error) {
	if ok, err := s.customerRepo.Existe(ctx, req.IDCustomers); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.NewFieldValidation("id_customers", "el cliente no existe")
	}
	if ok, err := s.userRepo.Existe(ctx, req.IDUsers); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.NewFieldValidation("id_users", "el usuario no existe")
	}
	if existing, err := s.repo.ObtenerPorVoucher(ctx, req.VoucherNumber); err == nil && existing != nil {
		return nil, apierror.NewFieldValidation("voucher_number", "el numero de comprobante ya esta registrado")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	igv := defaultIGV
	if req.IGV != nil {
		igv = *req.IGV
	}

	sale := &model.Sale{
		IDCustomers:   req.IDCustomers,
		IDUsers:       req.IDUsers,
		VoucherNumber: req.VoucherNumber,
		IGV:           igv,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Voucher:       req.Voucher,
		Document:      req.Document,
		DateTime:      time.Now(),
	}
	if err := s.repo.Crear(ctx, sale); err != nil {
		return nil, translateWrite(err, "el numero de comprobante ya esta registrado")
	}
	resp := mapSale(*sale)
	return &resp, nil
}

// Listar returns the sales plus the customer and user collections the
// form selectors need.
func (s *saleService) Listar(ctx context.Context) (*dto.SaleListResponse, error) {
	sales, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleListResponse{
		Sales:     make([]dto.SaleResponse, 0, len(sales)),
		Customers: make([]dto.CustomerResponse, 0, len(customers)),
		Users:     make([]dto.UserResponse, 0, len(users)),
	}
	for _, sale := range sales {
		resp.Sales = append(resp.Sales, mapSale(sale))
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, mapCustomer(c))
	}
	for _, u := range users {
		resp.Users = append(resp.Users, mapUser(u))
	}
	return resp, nil
}

// Actualizar overwrites the mutable fields; voucher_number, id_users and
// date_time are fixed at registration.
func (s *saleService) Actualizar(ctx context.Context, id uint, req dto.ActualizarSaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "venta")
	}
	if ok, err := s.customerRepo.Existe(ctx, req.IDCustomers); err != nil {
		return nil, err
	} else if !ok {
		return nil, apierror.NewFieldValidation("id_customers", "el cliente no existe")
	}

	sale.IDCustomers = req.IDCustomers
	if req.IGV != nil {
		sale.IGV = *req.IGV
	}
	sale.Total = req.Total
	sale.PaymentMethod = req.PaymentMethod
	sale.Voucher = req.Voucher
	sale.Document = req.Document

	if err := s.repo.Actualizar(ctx, sale); err != nil {
		return nil, err
	}
	resp := mapSale(*sale)
	return &resp, nil
}

func (s *saleService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return lookupErr(err, "venta")
	}
	return s.repo.Eliminar(ctx, id)
}

// buildVoucher loads the sale with its lines and renders the PDF.
func (s *saleService) buildVoucher(ctx context.Context, id uint) (*model.Sale, *model.Customer, string, error) {
	sale, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, nil, "", lookupErr(err, "venta")
	}
	customer, err := s.customerRepo.ObtenerPorID(ctx, sale.IDCustomers)
	if err != nil {
		return nil, nil, "", lookupErr(err, "cliente")
	}

	lines := make([]infra.VoucherLine, 0, len(sale.Details))
	for _, d := range sale.Details {
		name := fmt.Sprintf("Producto %d", d.IDProducts)
		if p, err := s.productRepo.ObtenerPorID(ctx, d.IDProducts); err == nil {
			name = p.Name
		}
		lines = append(lines, infra.VoucherLine{
			Product:  name,
			Quantity: d.Quantity,
			Discount: d.Discount,
			SubTotal: d.SubTotal,
		})
	}

	path, err := infra.GenerateVoucherPDF(sale, customer, lines, s.pdfPath)
	if err != nil {
		return nil, nil, "", err
	}
	return sale, customer, path, nil
}

func (s *saleService) GenerarVoucher(ctx context.Context, id uint) (string, error) {
	_, _, path, err := s.buildVoucher(ctx, id)
	return path, err
}

func (s *saleService) EnviarVoucher(ctx context.Context, id uint) (*dto.SendVoucherResponse, error) {
	sale, customer, path, err := s.buildVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		payload := worker.EmailJobPayload{
			ToEmail: customer.Email,
			Subject: fmt.Sprintf("Comprobante de venta %s", sale.VoucherNumber),
			Body:    fmt.Sprintf("Hola %s, adjuntamos el comprobante de tu compra.", customer.Name),
			PDFPath: path,
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			return nil, err
		}
	}

	return &dto.SendVoucherResponse{
		SaleID:  sale.ID,
		SentTo:  customer.Email,
		Queued:  true,
		PDFPath: path,
	}, nil
}
