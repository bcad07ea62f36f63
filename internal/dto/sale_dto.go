package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearSaleRequest struct {
	IDCustomers   uint             `json:"id_customers"   validate:"required,min=1"`
	IDUsers       uint             `json:"id_users"       validate:"required,min=1"`
	VoucherNumber string           `json:"voucher_number" validate:"required,max=255"`
	IGV           *decimal.Decimal `json:"igv"            validate:"omitempty,min=0,max=1"` // nil -> 0.18
	Total         decimal.Decimal  `json:"total"          validate:"min=0"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=cash card yape plin"`
	Voucher       string           `json:"voucher"        validate:"required,oneof=ticket invoice"`
	Document      *string          `json:"document"`
}

// ActualizarSaleRequest excludes voucher_number, id_users and date_time:
// the voucher identity, the registering user and the sale timestamp are
// immutable once the sale exists.
type ActualizarSaleRequest struct {
	IDCustomers   uint             `json:"id_customers"   validate:"required,min=1"`
	IGV           *decimal.Decimal `json:"igv"            validate:"omitempty,min=0,max=1"`
	Total         decimal.Decimal  `json:"total"          validate:"min=0"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=cash card yape plin"`
	Voucher       string           `json:"voucher"        validate:"required,oneof=ticket invoice"`
	Document      *string          `json:"document"`
}

type CrearSaleDetailRequest struct {
	IDSales    uint            `json:"id_sales"    validate:"required,min=1"`
	IDProducts uint            `json:"id_products" validate:"required,min=1"`
	Quantity   int             `json:"quantity"    validate:"required,min=1"`
	Discount   decimal.Decimal `json:"discount"    validate:"min=0"`
	SubTotal   decimal.Decimal `json:"sub_total"   validate:"min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type SaleResponse struct {
	ID            uint            `json:"id"`
	IDCustomers   uint            `json:"id_customers"`
	IDUsers       uint            `json:"id_users"`
	VoucherNumber string          `json:"voucher_number"`
	IGV           decimal.Decimal `json:"igv"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Voucher       string          `json:"voucher"`
	Document      *string         `json:"document,omitempty"`
	DateTime      time.Time       `json:"date_time"`
}

type SaleListResponse struct {
	Sales     []SaleResponse     `json:"sales"`
	Customers []CustomerResponse `json:"customers"`
	Users     []UserResponse     `json:"users"`
}

type SaleDetailResponse struct {
	ID         uint            `json:"id"`
	IDSales    uint            `json:"id_sales"`
	IDProducts uint            `json:"id_products"`
	Quantity   int             `json:"quantity"`
	Discount   decimal.Decimal `json:"discount"`
	SubTotal   decimal.Decimal `json:"sub_total"`
}

type SaleDetailListResponse struct {
	SaleDetails []SaleDetailResponse `json:"sale_details"`
	Sales       []SaleResponse       `json:"sales"`
	Products    []ProductResponse    `json:"products"`
}

// SendVoucherResponse acknowledges that the voucher email was queued.
type SendVoucherResponse struct {
	SaleID  uint   `json:"sale_id"`
	SentTo  string `json:"sent_to"`
	Queued  bool   `json:"queued"`
	PDFPath string `json:"pdf_path,omitempty"`
}
