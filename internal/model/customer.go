package model

import (
	"time"
)

// Customer holds the loyalty/credit data of a store customer.
type Customer struct {
	ID        uint      `gorm:"primaryKey"`
	DNI       string    `gorm:"column:dni;type:varchar(8);uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Birthday  time.Time `gorm:"type:date;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Phone     string    `gorm:"type:varchar(9);not null"`
	Address   string    `gorm:"not null"`
	Score     int       `gorm:"not null;default:0"`
	State     string    `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Sales []Sale `gorm:"foreignKey:IDCustomers"`
}
