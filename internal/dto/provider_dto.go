package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearProviderRequest struct {
	IDProducts          uint   `json:"id_products"          validate:"required,min=1"`
	RUC                 string `json:"ruc"                  validate:"required,max=11"`
	CompanyName         string `json:"company_name"         validate:"required,max=250"`
	ContactPerson       string `json:"contact_person"       validate:"required,max=250"`
	Phone               int    `json:"phone"                validate:"required,min=100000000,max=999999999"`
	Email               string `json:"email"                validate:"required,email"`
	Address             string `json:"address"              validate:"required"`
	Category            string `json:"category"             validate:"required,oneof=wholesaler retailer distributor manufacturer"`
	DescriptionProducts string `json:"description_products" validate:"required"`
	Status              string `json:"status"               validate:"required,oneof=active inactive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProviderResponse struct {
	ID                  uint   `json:"id"`
	IDProducts          uint   `json:"id_products"`
	RUC                 string `json:"ruc"`
	CompanyName         string `json:"company_name"`
	ContactPerson       string `json:"contact_person"`
	Phone               int    `json:"phone"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	Category            string `json:"category"`
	DescriptionProducts string `json:"description_products"`
	Status              string `json:"status"`
}

type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Products  []ProductResponse  `json:"products"`
}
