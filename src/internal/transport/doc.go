// Package transport is the single network boundary of the admin console.
//
// A Request describes one HTTP call (method, base URL, path, headers, query
// parameters and body). Transport.Do performs it and returns either a
// Response for 2xx statuses or an *Error that mirrors the response when the
// server answered with any other status.
//
// # Paths
//
// Paths may contain {{name}} placeholders which are filled from
// Request.PathParams:
//
//	req := &transport.Request{
//	    Method:     http.MethodGet,
//	    BaseURL:    "https://api.casava.test",
//	    URL:        "/customer-data/{{id}}",
//	    PathParams: map[string]string{"id": "42"},
//	}
//
// # Bodies
//
// Request.Data is encoded as JSON unless it is a *Multipart, []byte, string
// or io.Reader.
//
// # Cancellation
//
// Requests are bound to the caller's context. IsCancel reports whether a
// failure was caused by the caller aborting the request.
package transport
