package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearProductRequest struct {
	IDCategories      uint            `json:"id_categories"      validate:"required,min=1"`
	Code              string          `json:"code"               validate:"required,max=100"`
	Name              string          `json:"name"               validate:"required,max=255"`
	Description       string          `json:"description"        validate:"required"`
	UnitPrice         decimal.Decimal `json:"unit_price"         validate:"min=0"`
	HigherPrice       decimal.Decimal `json:"higher_price"       validate:"min=0"`
	Stock             int             `json:"stock"              validate:"min=0"`
	ExpirationDate    string          `json:"expiration_date"    validate:"required,datetime=2006-01-02"`
	PromotionDiscount int             `json:"promotion_discount" validate:"min=0,max=100"`
	State             string          `json:"state"              validate:"required,oneof=active inactive"`
}

// ActualizarProductRequest excludes code: the product code is immutable.
type ActualizarProductRequest struct {
	IDCategories      uint            `json:"id_categories"      validate:"required,min=1"`
	Name              string          `json:"name"               validate:"required,max=255"`
	Description       string          `json:"description"        validate:"required"`
	UnitPrice         decimal.Decimal `json:"unit_price"         validate:"min=0"`
	HigherPrice       decimal.Decimal `json:"higher_price"       validate:"min=0"`
	Stock             int             `json:"stock"              validate:"min=0"`
	ExpirationDate    string          `json:"expiration_date"    validate:"required,datetime=2006-01-02"`
	PromotionDiscount int             `json:"promotion_discount" validate:"min=0,max=100"`
	State             string          `json:"state"              validate:"required,oneof=active inactive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProductResponse struct {
	ID                uint            `json:"id"`
	IDCategories      uint            `json:"id_categories"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	HigherPrice       decimal.Decimal `json:"higher_price"`
	Stock             int             `json:"stock"`
	ExpirationDate    time.Time       `json:"expiration_date"`
	PromotionDiscount int             `json:"promotion_discount"`
	State             string          `json:"state"`
}

type ProductListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
}

// ProductOption is the minimal lookup shape for the promotion selector.
type ProductOption struct {
	ID                uint            `json:"id"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	PromotionDiscount int             `json:"promotion_discount"`
}

// PriceLookupResponse is served by the public price check endpoint.
type PriceLookupResponse struct {
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	HigherPrice       decimal.Decimal `json:"higher_price"`
	Stock             int             `json:"stock"`
	PromotionDiscount int             `json:"promotion_discount"`
}
