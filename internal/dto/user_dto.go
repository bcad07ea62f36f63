package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearUserRequest struct {
	Name           string `json:"name"             validate:"required,max=250"`
	Lastname       string `json:"lastname"         validate:"required,max=250"`
	DNI            int    `json:"dni"              validate:"required,min=10000000,max=99999999"`
	Phone          int    `json:"phone"            validate:"required,min=100000000,max=999999999"`
	Address        string `json:"address"          validate:"required"`
	Email          string `json:"email"            validate:"required,email"`
	Password       string `json:"password"         validate:"required,min=8"`
	Children       int    `json:"children"         validate:"min=0"`
	Affiliate      string `json:"affiliate"        validate:"required,oneof=ONP AFP"`
	Insured        string `json:"insured"          validate:"required,oneof=EsSalud SIS"`
	WorkModality   string `json:"work_modality"    validate:"required,oneof=fullTime partTime"`
	EntryDate      string `json:"entry_date"       validate:"required,datetime=2006-01-02"`
	Retention      string `json:"retention"        validate:"required,oneof=yes no"`
	EntryToPayroll string `json:"entry_to_payroll" validate:"required,oneof=yes no"`
	Role           string `json:"role"             validate:"required,oneof=root managment administrator_general logistic_general administrator logistic cashier asistente"`
	State          string `json:"state"            validate:"required,oneof=active inactive"`
}

// ActualizarUserRequest re-validates the full row except the password,
// which is only re-hashed and overwritten when provided.
type ActualizarUserRequest struct {
	Name           string  `json:"name"             validate:"required,max=250"`
	Lastname       string  `json:"lastname"         validate:"required,max=250"`
	DNI            int     `json:"dni"              validate:"required,min=10000000,max=99999999"`
	Phone          int     `json:"phone"            validate:"required,min=100000000,max=999999999"`
	Address        string  `json:"address"          validate:"required"`
	Email          string  `json:"email"            validate:"required,email"`
	Password       *string `json:"password"         validate:"omitempty,min=8"`
	Children       int     `json:"children"         validate:"min=0"`
	Affiliate      string  `json:"affiliate"        validate:"required,oneof=ONP AFP"`
	Insured        string  `json:"insured"          validate:"required,oneof=EsSalud SIS"`
	WorkModality   string  `json:"work_modality"    validate:"required,oneof=fullTime partTime"`
	EntryDate      string  `json:"entry_date"       validate:"required,datetime=2006-01-02"`
	Retention      string  `json:"retention"        validate:"required,oneof=yes no"`
	EntryToPayroll string  `json:"entry_to_payroll" validate:"required,oneof=yes no"`
	Role           string  `json:"role"             validate:"required,oneof=root managment administrator_general logistic_general administrator logistic cashier asistente"`
	State          string  `json:"state"            validate:"required,oneof=active inactive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type UserResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Lastname       string    `json:"lastname"`
	DNI            int       `json:"dni"`
	Phone          int       `json:"phone"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	Children       int       `json:"children"`
	Affiliate      string    `json:"affiliate"`
	Insured        string    `json:"insured"`
	WorkModality   string    `json:"work_modality"`
	EntryDate      time.Time `json:"entry_date"`
	Retention      string    `json:"retention"`
	EntryToPayroll string    `json:"entry_to_payroll"`
	Role           string    `json:"role"`
	State          string    `json:"state"`
}

// UserOption is the minimal lookup shape for selector UIs.
type UserOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
