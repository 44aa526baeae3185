package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Request describes a single HTTP call.
type Request struct {
	Method     string
	BaseURL    string
	URL        string
	PathParams map[string]string
	Headers    map[string]string
	Params     map[string]any
	Data       any
}

// Response is the transport-level result of a call.
type Response struct {
	Data       []byte
	Status     int
	StatusText string
	Headers    http.Header
}

// Error is returned when a call fails. Response is set when the server
// answered with a non-2xx status and nil for network failures.
type Error struct {
	Response *Response
	Err      error
}

func (e *Error) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("request failed with status code %d", e.Response.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transport performs HTTP calls.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPClient is the subset of *http.Client used by HTTPTransport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// IsCancel reports whether err was caused by the caller aborting the request.
func IsCancel(err error) bool {
	return errors.Is(err, context.Canceled)
}

// ResponseOf returns the response mirrored by a transport error, if any.
func ResponseOf(err error) *Response {
	var terr *Error
	if errors.As(err, &terr) {
		return terr.Response
	}
	return nil
}
