package apperr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// FromDB translates a storage-layer error into a taxonomy kind. Errors
// that already carry a kind pass through unchanged. Requires gorm to be
// opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey regardless of driver.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &Error{Kind: KindIntegrity, Err: err}
	case errors.Is(err, gorm.ErrInvalidDB):
		return &Error{Kind: KindConnectivity, Err: err}
	}
	msg := strings.ToLower(err.Error())
	// NOT NULL violations are not covered by gorm's error translation.
	if strings.Contains(msg, "constraint") {
		return &Error{Kind: KindIntegrity, Err: err}
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "connect: ") {
		return &Error{Kind: KindConnectivity, Err: err}
	}
	return &Error{Kind: KindUnknown, Err: err}
}
