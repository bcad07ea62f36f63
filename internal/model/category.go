package model

import (
	"time"
)

// Category classifies products.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:varchar(500);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []Product `gorm:"foreignKey:IDCategories"`
}

func (Category) TableName() string { return "categories" }
