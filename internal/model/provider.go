package model

import (
	"time"
)

// Provider represents a supplier. The schema models one product line per
// provider row (id_products), mirroring the purchasing workflow.
// Category: wholesaler | retailer | distributor | manufacturer
type Provider struct {
	ID                  uint   `gorm:"primaryKey"`
	IDProducts          uint   `gorm:"column:id_products;not null;index"`
	RUC                 string `gorm:"column:ruc;type:varchar(11);not null"`
	CompanyName         string `gorm:"not null"`
	ContactPerson       string `gorm:"not null"`
	Phone               int    `gorm:"not null"`
	Email               string `gorm:"not null"`
	Address             string `gorm:"not null"`
	Category            string `gorm:"type:varchar(20);not null"`
	DescriptionProducts string `gorm:"not null"`
	Status              string `gorm:"type:varchar(10);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Product *Product `gorm:"foreignKey:IDProducts;constraint:OnDelete:CASCADE"`
}
