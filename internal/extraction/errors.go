package extraction

import "fmt"

// ExtractionError reports a failure to pull text out of a document. It is
// non-fatal to the pipeline: callers are expected to fall back to
// TextOrPlaceholder rather than abort the parse.
type ExtractionError struct {
	MediaType string
	Message   string
	Cause     error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.MediaType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.MediaType, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError reports a media type the extractor has no handler for.
type UnsupportedTypeError struct {
	MediaType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MediaType)
}
