package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearCustomerRequest struct {
	DNI      string `json:"dni"       validate:"required,len=8,numeric"`
	Name     string `json:"name"      validate:"required,max=255"`
	LastName string `json:"last_name" validate:"required,max=255"`
	Birthday string `json:"birthday"  validate:"required,datetime=2006-01-02"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Phone    string `json:"phone"     validate:"required,max=9"`
	Address  string `json:"address"   validate:"required,max=255"`
	Score    int    `json:"score"     validate:"min=0"`
	State    string `json:"state"     validate:"required,oneof=active inactive"`
}

// ActualizarCustomerRequest excludes dni and email: both are immutable
// identity fields once the customer exists.
type ActualizarCustomerRequest struct {
	Name     string `json:"name"      validate:"required,max=255"`
	LastName string `json:"last_name" validate:"required,max=255"`
	Birthday string `json:"birthday"  validate:"required,datetime=2006-01-02"`
	Phone    string `json:"phone"     validate:"required,max=9"`
	Address  string `json:"address"   validate:"required,max=255"`
	Score    int    `json:"score"     validate:"min=0"`
	State    string `json:"state"     validate:"required,oneof=active inactive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID       uint      `json:"id"`
	DNI      string    `json:"dni"`
	Name     string    `json:"name"`
	LastName string    `json:"last_name"`
	Birthday time.Time `json:"birthday"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Score    int       `json:"score"`
	State    string    `json:"state"`
}
