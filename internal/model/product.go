package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. UnitPrice is the regular selling price and
// HigherPrice the pre-discount reference price; PromotionDiscount is a
// percentage 0-100 applied by the promotions module.
type Product struct {
	ID                uint            `gorm:"primaryKey"`
	IDCategories      uint            `gorm:"column:id_categories;not null;index"`
	Code              string          `gorm:"uniqueIndex;not null"`
	Name              string          `gorm:"index;not null"`
	Description       string          `gorm:"not null"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	HigherPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock             int             `gorm:"not null;default:0"`
	ExpirationDate    time.Time       `gorm:"type:date;not null"`
	PromotionDiscount int             `gorm:"not null;default:0"` // percentage 0-100
	State             string          `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Category *Category `gorm:"foreignKey:IDCategories;constraint:OnDelete:CASCADE"`
}
