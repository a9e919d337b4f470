package domain

import "errors"

// Failure kinds surfaced by every fallible operation. Callers discriminate
// with errors.Is; the wrapped message carries the detail.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrNotFound        = errors.New("not found")
	ErrRuleViolation   = errors.New("rule violation")
)
