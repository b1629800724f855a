package service

import (
	"errors"
	"strings"

	"go-inventory-pro/internal/apperr"
	"go-inventory-pro/pkg/validator"

	"gorm.io/gorm"
)

// storageErr wraps unexpected persistence failures so handlers can map
// them to a "system is down" response, distinct from input errors.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return &apperr.StorageUnavailableError{Err: err}
}

// isDuplicate detects unique-index violations from the storage layer. The
// database constraint is the authoritative uniqueness guard; app-level
// lookups are only the user-friendly fast path.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// validationErr converts the first validator failure into the
// user-readable ValidationError surfaced by the API.
func validationErr(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return apperr.Validation("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}
