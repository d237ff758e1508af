package errors

import (
	"errors"
	"fmt"
)

// PoolTooSmallError is the fatal precondition violation raised when a
// sampler is asked for more items than its pool holds. Generation must
// abort before any write; there is no truncate-and-continue mode.
type PoolTooSmallError struct {
	Entity    string // what was being sampled, e.g. "team member"
	Requested int
	Available int
}

func (e *PoolTooSmallError) Error() string {
	return fmt.Sprintf("%s pool too small: requested %d, available %d", e.Entity, e.Requested, e.Available)
}

// Is enables errors.Is() comparison for PoolTooSmallError
func (e *PoolTooSmallError) Is(target error) bool {
	t, ok := target.(*PoolTooSmallError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// CatalogError represents a malformed organization catalogue
type CatalogError struct {
	Field   string
	Message string
}

func (e *CatalogError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("catalog error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

// ReportError represents a credential-report write failure. By the time it
// surfaces the data transaction has already committed, so callers must not
// treat it as a rollback signal.
type ReportError struct {
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("credential report %s: %v", e.Path, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// Persistence Errors
var (
	ErrEmptyDataset    = errors.New("dataset has no organizations")
	ErrDatasetMismatch = errors.New("dataset references an organization outside the catalogue")
)

// Helper Functions

// IsPoolTooSmall checks if an error is a PoolTooSmallError
func IsPoolTooSmall(err error) bool {
	var poolErr *PoolTooSmallError
	return errors.As(err, &poolErr)
}

// IsCatalog checks if an error is a CatalogError
func IsCatalog(err error) bool {
	var catErr *CatalogError
	return errors.As(err, &catErr)
}

// IsReport checks if an error is a ReportError
func IsReport(err error) bool {
	var repErr *ReportError
	return errors.As(err, &repErr)
}

// NewPoolTooSmallError creates a PoolTooSmallError for a sampling step
func NewPoolTooSmallError(entity string, requested, available int) error {
	return &PoolTooSmallError{Entity: entity, Requested: requested, Available: available}
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(field, message string) error {
	return &CatalogError{Field: field, Message: message}
}

// NewReportError wraps a report write failure with its target path
func NewReportError(path string, err error) error {
	return &ReportError{Path: path, Err: err}
}
