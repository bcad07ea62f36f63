package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDetail is one product line of a sale.
type SaleDetail struct {
	ID         uint            `gorm:"primaryKey"`
	IDSales    uint            `gorm:"column:id_sales;not null;index"`
	IDProducts uint            `gorm:"column:id_products;not null;index"`
	Quantity   int             `gorm:"not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubTotal   decimal.Decimal `gorm:"column:sub_total;type:decimal(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Sale    *Sale    `gorm:"foreignKey:IDSales;constraint:OnDelete:CASCADE"`
	Product *Product `gorm:"foreignKey:IDProducts;constraint:OnDelete:CASCADE"`
}
