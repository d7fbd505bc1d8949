package llm

import "fmt"

// APICallError represents an error from the Gemini API
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ResponseError represents an unusable scoring response: malformed JSON,
// schema violations, or out-of-range values.
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad scoring response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("bad scoring response: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
