package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile         = errors.New("file field is required")
	ErrMultipleFiles       = errors.New("exactly one file must be provided")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrMediaTypeMismatch   = errors.New("declared media type does not match the file extension")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrMissingField        = errors.New("document data, question, and API key are all required")
	ErrProviderUnreachable = errors.New("could not connect to the language model provider")
	ErrRequestSetup        = errors.New("failed to construct the provider request")
)

// Extraction error reasons.
const (
	ReasonUnparsablePDF         = "unparsable-pdf"
	ReasonUnparsableSpreadsheet = "unparsable-spreadsheet"
)

// ExtractionError indicates a validated file whose content could not be parsed.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ProviderHTTPError indicates the model provider responded with an error status.
type ProviderHTTPError struct {
	StatusCode int
	Message    string
}

func (e *ProviderHTTPError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}
