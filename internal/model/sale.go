package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one checkout registered by a user for a customer.
// Voucher distinguishes a simple ticket from a formal invoice; IGV is the
// sales tax rate applied to the total (defaults to 0.18).
type Sale struct {
	ID            uint            `gorm:"primaryKey"`
	IDCustomers   uint            `gorm:"column:id_customers;not null;index"`
	IDUsers       uint            `gorm:"column:id_users;not null;index"`
	VoucherNumber string          `gorm:"uniqueIndex;not null"`
	IGV           decimal.Decimal `gorm:"column:igv;type:decimal(5,4);not null;default:0.18"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(10);not null"` // cash | card | yape | plin
	Voucher       string          `gorm:"type:varchar(10);not null"` // ticket | invoice
	Document      *string
	DateTime      time.Time `gorm:"column:date_time;not null;default:CURRENT_TIMESTAMP"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer *Customer    `gorm:"foreignKey:IDCustomers;constraint:OnDelete:CASCADE"`
	User     *User        `gorm:"foreignKey:IDUsers;constraint:OnDelete:CASCADE"`
	Details  []SaleDetail `gorm:"foreignKey:IDSales"`
}
