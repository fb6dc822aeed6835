package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"

	"github.com/go-resty/resty/v2"
)

// mapUpstreamError returns nil when resp carries one of the accepted
// statuses, and an *UpstreamError with the upstream status otherwise.
func mapUpstreamError(resp *resty.Response, message string, accepted ...int) error {
	if slices.Contains(accepted, resp.StatusCode()) {
		return nil
	}

	return &UpstreamError{
		StatusCode: resp.StatusCode(),
		Message:    message,
		Err:        fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode()),
	}
}

// mapTransportError converts a failed round trip into a gateway error.
func mapTransportError(err error, message string) error {
	if isTimeout(err) {
		return &UpstreamError{
			StatusCode: http.StatusGatewayTimeout,
			Message:    message,
			Err:        fmt.Errorf("%w: %w", ErrUpstreamTimeout, err),
		}
	}

	return &UpstreamError{
		StatusCode: http.StatusBadGateway,
		Message:    message,
		Err:        fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err),
	}
}

func mapDecodeError(err error, message string) error {
	return &UpstreamError{
		StatusCode: http.StatusBadGateway,
		Message:    message,
		Err:        fmt.Errorf("%w: %w", ErrMalformedUpstreamBody, err),
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
