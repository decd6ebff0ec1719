package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateMessage is returned when inserting a birthday message
	// violates the per-customer-per-year unique constraint. Callers treat
	// it as "already sent this year", not as a failure.
	ErrDuplicateMessage = errors.New("birthday message already recorded for this year")
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
