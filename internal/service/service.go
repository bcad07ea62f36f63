package service

import (
	"context"
	"errors"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// translateWrite converts a duplicate-key error surfaced by the store at
// commit time into the API constraint error; anything else passes through.
func translateWrite(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.NewConstraint(msg)
	}
	return err
}

// lookupErr maps a record-not-found lookup to the API taxonomy.
func lookupErr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NewNotFound(resource)
	}
	return err
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apierror.NewFieldValidation(field, "fecha invalida, formato esperado YYYY-MM-DD")
	}
	return t, nil
}
