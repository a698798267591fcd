package domain

import "fmt"

// ValidationError reports bad input shape or range. It is always raised
// before any write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports a duplicate identity or a record already
// processed by another caller.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflictf(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing referenced record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// BudgetExceededError reports a lending-budget or exposure-cap
// violation. Limit carries the computed cap so callers can surface it.
type BudgetExceededError struct {
	Limit     float64
	Requested float64
	Msg       string
}

func (e *BudgetExceededError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: requested %.2f exceeds limit %.2f", e.Msg, e.Requested, e.Limit)
	}
	return fmt.Sprintf("requested %.2f exceeds limit %.2f", e.Requested, e.Limit)
}
