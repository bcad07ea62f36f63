package model

import (
	"time"
)

// User stores system users with role-based access and payroll data.
// Role: root | managment | administrator_general | logistic_general |
// administrator | logistic | cashier | asistente
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Lastname       string `gorm:"not null"`
	DNI            int    `gorm:"column:dni;not null"`
	Phone          int    `gorm:"not null"`
	Address        string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Children       int    `gorm:"not null;default:0"`
	Affiliate      string `gorm:"type:varchar(10);not null;default:'AFP'"`     // ONP | AFP
	Insured        string `gorm:"type:varchar(10);not null;default:'EsSalud'"` // EsSalud | SIS
	WorkModality   string `gorm:"type:varchar(10);not null;default:'fullTime'"`
	EntryDate      time.Time
	Retention      string `gorm:"type:varchar(5);not null"` // yes | no
	EntryToPayroll string `gorm:"type:varchar(5);not null"`
	Role           string `gorm:"type:varchar(30);not null"`
	State          string `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Branches []Branch `gorm:"foreignKey:IDUsers"`
	Sales    []Sale   `gorm:"foreignKey:IDUsers"`
	Buys     []Buy    `gorm:"foreignKey:IDUsers"`
}
