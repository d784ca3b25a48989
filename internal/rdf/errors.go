package rdf

import (
	"errors"
	"fmt"
)

// FormatError reports malformed "M:SS" duration text, either at parse
// time or when an aggregate query decodes a duration literal. Subject
// identifies the track node whose literal was at fault when the error
// surfaces from a query; it is empty for plain parse failures.
type FormatError struct {
	// Text is the offending duration text.
	Text string

	// Reason is a human-readable description of the violation.
	Reason string

	// Subject is the track node carrying the literal, when known.
	Subject Node
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("malformed duration %q on %s: %s", e.Text, e.Subject, e.Reason)
	}
	return fmt.Sprintf("malformed duration %q: %s", e.Text, e.Reason)
}

// IsFormatError returns true if the error is a duration format error.
// Uses errors.As to handle wrapped errors.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
