package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasttemplate"

	"github.com/casava/admin-console/src/internal/errors"
	"github.com/casava/admin-console/src/internal/log"
)

const (
	// DefaultTimeout applies when no HTTP client is supplied.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-call identifier for backend log correlation.
	RequestIDHeader = "X-Request-ID"
)

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	client    HTTPClient
	userAgent string
}

// NewHTTPTransport creates a transport using client. If client is nil, an
// *http.Client with DefaultTimeout is used.
func NewHTTPTransport(client HTTPClient) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{client: client}
}

// NewHTTPTransportWithTimeout creates a transport with its own *http.Client.
// A zero timeout falls back to DefaultTimeout.
func NewHTTPTransportWithTimeout(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewHTTPTransport(&http.Client{Timeout: timeout})
}

// SetUserAgent sets the User-Agent sent with every request.
func (t *HTTPTransport) SetUserAgent(ua string) {
	t.userAgent = ua
}

// Do performs req. Non-2xx statuses are returned as *Error with the response
// mirrored; network failures as *Error without a response.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := t.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log.Debugf("%s %s", httpReq.Method, httpReq.URL.Redacted())

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	resp := &Response{
		Data:       body,
		Status:     httpResp.StatusCode,
		StatusText: statusText(httpResp),
		Headers:    httpResp.Header,
	}
	log.Debugf("%s %s - %d (%v)", httpReq.Method, httpReq.URL.Path, resp.Status, time.Since(start))

	if resp.Status < 200 || resp.Status >= 300 {
		return nil, &Error{Response: resp, Err: fmt.Errorf("unexpected status %d %s", resp.Status, resp.StatusText)}
	}
	return resp, nil
}

func (t *HTTPTransport) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	target, err := BuildURL(req)
	if err != nil {
		return nil, errors.NewTransportError("failed to build request URL", err)
	}

	body, contentType, err := encodeBody(req.Data)
	if err != nil {
		return nil, errors.NewTransportError("failed to encode request body", err)
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.NewTransportError("failed to create request", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if httpReq.Header.Get(RequestIDHeader) == "" {
		httpReq.Header.Set(RequestIDHeader, uuid.NewString())
	}

	return httpReq, nil
}

// BuildURL resolves the request path against its base URL, fills {{name}}
// placeholders and appends the query parameters.
func BuildURL(req *Request) (string, error) {
	path, err := renderPath(req.URL, req.PathParams)
	if err != nil {
		return "", err
	}

	var target string
	if isAbsolute(path) {
		target = path
	} else {
		if req.BaseURL == "" {
			return "", fmt.Errorf("relative URL %q without a base URL", path)
		}
		target = strings.TrimRight(req.BaseURL, "/")
		if path != "" {
			target += "/" + strings.TrimLeft(path, "/")
		}
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}

	if len(req.Params) > 0 {
		query := u.Query()
		for _, key := range sortedKeys(req.Params) {
			for _, v := range paramValues(req.Params[key]) {
				query.Add(key, v)
			}
		}
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}

func renderPath(path string, params map[string]string) (string, error) {
	if !strings.Contains(path, "{{") {
		return path, nil
	}

	tmpl, err := fasttemplate.NewTemplate(path, "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("invalid path template %q: %w", path, err)
	}

	return tmpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		value, ok := params[strings.TrimSpace(tag)]
		if !ok {
			return 0, fmt.Errorf("missing path parameter %q", tag)
		}
		return w.Write([]byte(url.PathEscape(value)))
	})
}

func isAbsolute(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func paramValues(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, paramValues(item)...)
		}
		return out
	case []int:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case time.Time:
		return []string{val.Format(time.RFC3339)}
	default:
		return []string{fmt.Sprint(val)}
	}
}

func encodeBody(data any) (io.Reader, string, error) {
	switch body := data.(type) {
	case nil:
		return nil, "", nil
	case *Multipart:
		buf, contentType, err := body.encode()
		if err != nil {
			return nil, "", err
		}
		return buf, contentType, nil
	case []byte:
		return bytes.NewReader(body), "", nil
	case string:
		return strings.NewReader(body), "text/plain; charset=utf-8", nil
	case io.Reader:
		return body, "", nil
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(encoded), "application/json", nil
	}
}

// statusText extracts the reason phrase from "200 OK".
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
