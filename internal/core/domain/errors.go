package domain

import (
	"errors"
	"fmt"
)

var (
	ErrQuotaExceeded   = errors.New("daily analysis quota exceeded")
	ErrEmptyInput      = errors.New("no analyzable input")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("session not found")
	ErrBackend         = errors.New("backend failure")
	ErrTemporary       = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
