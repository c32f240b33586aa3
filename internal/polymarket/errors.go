package polymarket

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned for URLs that are not of the form /event/<slug>.
	ErrInvalidFormat = errors.New("invalid Polymarket URL format")

	// ErrEndpointUnavailable matches any EndpointError.
	ErrEndpointUnavailable = errors.New("endpoint unavailable")

	// ErrTradeFetchFailed is returned when the trade history request fails.
	ErrTradeFetchFailed = errors.New("trade fetch failed")
)

// EndpointError describes a failed call to a single remote endpoint.
// StatusCode is zero when no response was received.
type EndpointError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *EndpointError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s endpoint returned status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s endpoint unavailable: %v", e.Endpoint, e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEndpointUnavailable.
func (e *EndpointError) Is(target error) bool {
	return target == ErrEndpointUnavailable
}
