package csvcodec

import "fmt"

// FormatError means the bytes or overall structure could not be decoded.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid CSV format: %s", e.Reason)
}

// MissingDataError means a required section of the input is absent.
type MissingDataError struct {
	What string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing data: %s", e.What)
}

// ValidationError means a field is present but semantically invalid. Row is
// the 1-based data row number.
type ValidationError struct {
	Row    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %s", e.Row, e.Field, e.Reason)
}
