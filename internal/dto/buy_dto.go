package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearBuyRequest struct {
	IDProvider    uint            `json:"id_provider"    validate:"required,min=1"`
	IDUsers       uint            `json:"id_users"       validate:"required,min=1"`
	VoucherNumber string          `json:"voucher_number" validate:"required,max=255"`
	Total         decimal.Decimal `json:"total"          validate:"min=0"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash card yape plin"`
	PaymentStatus string          `json:"payment_status" validate:"required,oneof=cancelled pending delivered"`
}

// ActualizarBuyRequest excludes voucher_number, id_users and date_time,
// mirroring the sale mutability policy.
type ActualizarBuyRequest struct {
	IDProvider    uint            `json:"id_provider"    validate:"required,min=1"`
	Total         decimal.Decimal `json:"total"          validate:"min=0"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash card yape plin"`
	PaymentStatus string          `json:"payment_status" validate:"required,oneof=cancelled pending delivered"`
}

type CrearBuyDetailRequest struct {
	IDBuys     uint            `json:"id_buys"     validate:"required,min=1"`
	IDProducts uint            `json:"id_products" validate:"required,min=1"`
	Quantity   int             `json:"quantity"    validate:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price"  validate:"min=0"`
	SubTotal   decimal.Decimal `json:"sub_total"   validate:"min=0"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type BuyResponse struct {
	ID            uint            `json:"id"`
	IDProvider    uint            `json:"id_provider"`
	IDUsers       uint            `json:"id_users"`
	VoucherNumber string          `json:"voucher_number"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	DateTime      time.Time       `json:"date_time"`
}

type BuyListResponse struct {
	Buys      []BuyResponse      `json:"buys"`
	Providers []ProviderResponse `json:"providers"`
	Users     []UserResponse     `json:"users"`
}

type BuyDetailResponse struct {
	ID         uint            `json:"id"`
	IDBuys     uint            `json:"id_buys"`
	IDProducts uint            `json:"id_products"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	SubTotal   decimal.Decimal `json:"sub_total"`
}

type BuyDetailListResponse struct {
	BuyDetails []BuyDetailResponse `json:"buy_details"`
	Buys       []BuyResponse       `json:"buys"`
	Products   []ProductResponse   `json:"products"`
}
