package catalog

import (
	"errors"
	"fmt"
)

// NetworkError is returned when the catalog request fails or the server
// answers with anything other than 200.
type NetworkError struct {
	URL    string
	Status int // zero when the transport itself failed
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: HTTP %d", e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError checks if an error came from the catalog transport.
func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// MalformedResponseError is returned when the catalog body cannot be decoded.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsMalformedResponse checks if an error indicates an undecodable catalog.
func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}
