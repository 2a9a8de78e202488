package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPersistenceLoad       = errors.New("persisted plans are not valid")
	ErrImportParse           = errors.New("import file could not be parsed")
	ErrExportEmptyCollection = errors.New("no plans to export")
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrPlanNotFound          = errors.New("plan not found")
	ErrInvalidPlan           = errors.New("invalid plan")
)

// ImportError rejects a whole import. It matches ErrImportParse with errors.Is.
type ImportError struct {
	Format string
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("import %s: %s", e.Format, e.Reason)
}

func (e *ImportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrImportParse, e.Err}
	}
	return []error{ErrImportParse}
}
