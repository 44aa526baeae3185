// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production builds
// since it's not imported in any production code.
package mocks

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/casava/admin-console/src/internal/transport"
)

// MockTransport is a mock implementation of the transport.Transport interface.
//
// It records every request it receives. If DoFunc is nil, it answers
// 200 OK with an empty JSON object.
//
// Example usage:
//
//	mock := &MockTransport{
//	    DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
//	        return mocks.JSONResponse(http.StatusOK, map[string]any{"data": 1}), nil
//	    },
//	}
type MockTransport struct {
	// DoFunc is called by Do if not nil
	DoFunc func(ctx context.Context, req *transport.Request) (*transport.Response, error)

	mu       sync.Mutex
	requests []*transport.Request
}

// Do records req and delegates to DoFunc.
func (m *MockTransport) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.DoFunc != nil {
		return m.DoFunc(ctx, req)
	}
	return JSONResponse(http.StatusOK, map[string]any{}), nil
}

// Requests returns the requests received so far.
func (m *MockTransport) Requests() []*transport.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*transport.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Calls returns the number of requests received so far.
func (m *MockTransport) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the most recent request or nil.
func (m *MockTransport) LastRequest() *transport.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// JSONResponse builds a response whose body is the JSON encoding of body.
func JSONResponse(status int, body any) *transport.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return &transport.Response{
		Data:       data,
		Status:     status,
		StatusText: http.StatusText(status),
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
	}
}

// StatusError builds the error a transport returns for a non-2xx response.
func StatusError(status int, body any) error {
	return &transport.Error{Response: JSONResponse(status, body)}
}
