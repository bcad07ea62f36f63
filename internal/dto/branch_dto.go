package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearBranchRequest struct {
	IDUsers     uint   `json:"id_users"     validate:"required,min=1"`
	Name        string `json:"name"         validate:"required,max=255"`
	Address     string `json:"address"      validate:"required"`
	OpeningTime string `json:"opening_time" validate:"required"`
	ClosingTime string `json:"closing_time" validate:"required"`
	State       string `json:"state"        validate:"required,oneof=active inactive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type BranchResponse struct {
	ID          uint   `json:"id"`
	IDUsers     uint   `json:"id_users"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	State       string `json:"state"`
	UserName    string `json:"user_name,omitempty"` // manager, for the listing
}

type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
	Users    []UserOption     `json:"users"`
}
