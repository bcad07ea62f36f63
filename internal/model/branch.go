package model

import (
	"time"
)

// Branch represents a store location managed by a user.
type Branch struct {
	ID          uint   `gorm:"primaryKey"`
	IDUsers     uint   `gorm:"column:id_users;not null;index"`
	Name        string `gorm:"not null"`
	Address     string `gorm:"not null"`
	OpeningTime string `gorm:"not null"`
	ClosingTime string `gorm:"not null"`
	State       string `gorm:"type:varchar(10);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *User `gorm:"foreignKey:IDUsers;constraint:OnDelete:CASCADE"`
}

func (Branch) TableName() string { return "branches" }
