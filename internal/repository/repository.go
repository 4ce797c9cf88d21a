// Package repository provides sqlx-backed data access. All SQL is
// parameterized; sentinel errors mark absent rows and constraint violations.
package repository

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTodoNotFound     = errors.New("todo not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrSongNotFound     = errors.New("song not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrUnknownStatField = errors.New("unknown stat field")
)

// isUniqueViolation detects unique-constraint failures for both supported
// drivers (modernc sqlite reports "UNIQUE constraint failed", pgx reports
// SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}
