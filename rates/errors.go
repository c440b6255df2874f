package rates

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed the rate source could not be reached
	ErrRequestFailed = errors.New("exchange rate request failed")

	// ErrValueNotFound the response has no numeric rates.USD field
	ErrValueNotFound = errors.New("exchange rate value not found")
)

// ResponseParsingError the response body is not valid JSON
type ResponseParsingError struct {
	Err error
}

func (e *ResponseParsingError) Error() string {
	return fmt.Sprintf("exchange rate response parsing: %v", e.Err)
}

func (e *ResponseParsingError) Unwrap() error {
	return e.Err
}
