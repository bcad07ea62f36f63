package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion is one line item of a promotion bundle: the set of rows sharing
// one NamePromotion value together represents a multi-product offer sold at
// a single bundle price.
type Promotion struct {
	ID            uint            `gorm:"primaryKey"`
	IDProducts    uint            `gorm:"column:id_products;not null;index"`
	NamePromotion string          `gorm:"index;not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	State         string          `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product *Product `gorm:"foreignKey:IDProducts;constraint:OnDelete:CASCADE"`
}
