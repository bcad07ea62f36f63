package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// PromotionItemInput references one product included in a promotion bundle.
type PromotionItemInput struct {
	ID uint `json:"id" validate:"required,min=1"`
}

// CrearPromotionRequest creates a bundle: one promotion row per item, all
// sharing the same name/price/state. Also used by update, which rebuilds
// the bundle from scratch.
type CrearPromotionRequest struct {
	Items         []PromotionItemInput `json:"item"           validate:"required,min=1,dive"`
	NamePromotion string               `json:"name_promotion" validate:"required"`
	Price         decimal.Decimal      `json:"price"          validate:"min=0"`
	State         string               `json:"state"          validate:"required,oneof=active inactive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type PromotionResponse struct {
	ID            uint            `json:"id"`
	IDProducts    uint            `json:"id_products"`
	NamePromotion string          `json:"name_promotion"`
	Price         decimal.Decimal `json:"price"`
	State         string          `json:"state"`
}

type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	Products   []ProductOption     `json:"products"`
}
