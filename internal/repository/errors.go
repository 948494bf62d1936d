// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that an operation cannot proceed due to
// existing dependent records (e.g. deleting a program that still has
// students), while ErrDuplicate indicates a uniqueness violation such
// as two rooms sharing a room number.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state, such as deleting a room that is booked
// for an exam. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// ErrDuplicate is returned when an insert violates a unique constraint,
// such as a duplicate program code or room number. Handlers should
// translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (error number 1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
