package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuyDetail is one product line of a purchase.
type BuyDetail struct {
	ID         uint            `gorm:"primaryKey"`
	IDBuys     uint            `gorm:"column:id_buys;not null;index"`
	IDProducts uint            `gorm:"column:id_products;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubTotal   decimal.Decimal `gorm:"column:sub_total;type:decimal(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Buy     *Buy     `gorm:"foreignKey:IDBuys;constraint:OnDelete:CASCADE"`
	Product *Product `gorm:"foreignKey:IDProducts;constraint:OnDelete:CASCADE"`
}
