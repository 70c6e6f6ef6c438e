package fault

import (
	"fmt"
	"strings"
)

// Typed errors surfaced by the engine. Handlers map these to HTTP codes;
// usecases construct them with enough detail to render a specific message
// (missing roles, per-member gate issues) in one response.

// ValidationError: malformed or out-of-range input. Non-retryable.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func Validation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// StateError: entity not in the state the operation requires. Non-retryable.
type StateError struct {
	Entity  string
	ID      string
	Current string
	Want    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %s is %s, want %s", e.Entity, e.ID, e.Current, e.Want)
}

// AuthorizationError: required signatures are missing. Retryable once the
// remaining approvals are collected.
type AuthorizationError struct {
	Entity       string
	ID           string
	MissingRoles []string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s %s missing signatures: %s", e.Entity, e.ID, strings.Join(e.MissingRoles, ", "))
}

// Violation is one member-level gate failure.
type Violation struct {
	MemberID uint64 `json:"member_id"`
	Issue    string `json:"issue"`
}

// BusinessRuleError: a domain constraint was violated (loan limit, duplicate
// active loan, admission gate). Carries every violation found, not just the first.
type BusinessRuleError struct {
	Rule       string
	Msg        string
	Violations []Violation
}

func (e *BusinessRuleError) Error() string {
	if len(e.Violations) == 0 {
		return e.Rule + ": " + e.Msg
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("member %d: %s", v.MemberID, v.Issue))
	}
	return e.Rule + ": " + e.Msg + " [" + strings.Join(parts, "; ") + "]"
}

func Rule(rule, msg string) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Msg: msg}
}

// NotFoundError: the referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string { return e.Entity + " " + e.ID + " not found" }

func NotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// StoreError: the persistent store call failed. Reads are safe to retry;
// mutations only behind an idempotency key.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return "store: " + e.Op + ": " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) *StoreError { return &StoreError{Op: op, Err: err} }
