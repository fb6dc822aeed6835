package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUpstreamStatus        = errors.New("upstream responded with unexpected status")
	ErrUpstreamTimeout       = errors.New("upstream request timed out")
	ErrUpstreamUnavailable   = errors.New("upstream is unreachable")
	ErrMalformedUpstreamBody = errors.New("malformed upstream response body")
)

// UpstreamError is returned by every failed [MarketAdapter] call.
// StatusCode is the status the proxy answers with: the upstream status for a
// rejected call, 504 for a timeout, 502 for any other transport or decoding
// failure.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d): %v", e.Message, e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
