package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Buy is a purchase placed with a provider.
// PaymentStatus: cancelled | pending | delivered (defaults to pending).
type Buy struct {
	ID            uint            `gorm:"primaryKey"`
	IDProvider    uint            `gorm:"column:id_provider;not null;index"`
	IDUsers       uint            `gorm:"column:id_users;not null;index"`
	VoucherNumber string          `gorm:"uniqueIndex;not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(10);not null"`
	PaymentStatus string          `gorm:"type:varchar(10);not null;default:'pending'"`
	DateTime      time.Time       `gorm:"column:date_time;not null;default:CURRENT_TIMESTAMP"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Provider *Provider   `gorm:"foreignKey:IDProvider;constraint:OnDelete:CASCADE"`
	User     *User       `gorm:"foreignKey:IDUsers;constraint:OnDelete:CASCADE"`
	Details  []BuyDetail `gorm:"foreignKey:IDBuys"`
}
