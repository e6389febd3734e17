package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Domain error taxonomy. Handlers map these to transport status codes; the
// stores themselves never decide HTTP semantics.
var (
	// ErrNotFound is returned by every id-based lookup, update or delete
	// that misses.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey signals a unique constraint violation (tax id).
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrValidation signals a required field or reference missing before
	// anything reaches storage.
	ErrValidation = errors.New("validation failed")
	// ErrIntegrity signals a delete blocked by dependent rows.
	ErrIntegrity = errors.New("dependent records exist")
)

// DeletePolicy controls what happens when a Customer or Supplier is deleted
// while dependent Sales or Products still reference it.
type DeletePolicy string

const (
	// DeletePermissive deletes the owner and leaves dependents dangling.
	DeletePermissive DeletePolicy = "permissive"
	// DeleteRestrict fails the delete with ErrIntegrity instead.
	DeleteRestrict DeletePolicy = "restrict"
)

// translate converts driver and GORM errors into the domain taxonomy.
// The tax-id pre-check before insert is not atomic, so the unique index is
// the backstop for concurrent creates; its violation surfaces here.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") {
		return ErrDuplicateKey
	}
	if strings.Contains(msg, "foreign key") {
		return ErrIntegrity
	}
	return err
}
