package infra

import (
	"fmt"

	"github.com/catvAlbuss/minimarketsystem/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// so that every table exists before the server accepts traffic.
// TranslateError lets the repositories match gorm.ErrDuplicatedKey instead of
// driver-specific SQLSTATE codes.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates every table. Also used by integration
// tests against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Branch{},
		&model.Customer{},
		&model.Category{},
		&model.Product{},
		&model.Provider{},
		&model.Promotion{},
		&model.Sale{},
		&model.SaleDetail{},
		&model.Buy{},
		&model.BuyDetail{},
	)
}
