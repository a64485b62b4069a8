// Package repository owns the data access logic for every portfolio entity.
// Repositories are constructed with their dependencies (gorm DB, blob store
// uploader) so handlers and tests can swap them freely.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel kinds the API layer matches on with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Error pairs a sentinel kind with a human-readable message suitable for the
// response envelope.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error   { return &Error{Kind: ErrNotFound, Message: msg} }
func conflict(msg string) error   { return &Error{Kind: ErrConflict, Message: msg} }
func validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

// translate maps gorm errors onto the repository taxonomy. The DB's own
// unique-index rejection is the sole source of truth for conflicts, there is
// no existence pre-check.
func translate(err error, notFoundMsg, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict(conflictMsg)
	default:
		return err
	}
}
