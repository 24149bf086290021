package ingestion

import "fmt"

// UnsupportedTypeError signals a MIME type the pipeline does not handle.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %q", e.MimeType)
}

// ExtractError wraps a failure while decoding a supported document format.
type ExtractError struct {
	Format string
	Cause  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.Format, e.Cause)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
