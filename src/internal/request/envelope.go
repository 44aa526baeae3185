package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/casava/admin-console/src/internal/errors"
	"github.com/casava/admin-console/src/internal/transport"
)

// Response is the decoded result of a successful call.
type Response[T any] struct {
	Data       *T     `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Status     int    `json:"status"`
	StatusText string `json:"statusText,omitempty"`
}

// ErrorEnvelope is the normalized form of a failed call. Body fields of the
// error response (message, errors, data) are merged with its status line.
type ErrorEnvelope struct {
	Data       json.RawMessage     `json:"data,omitempty"`
	Message    string              `json:"message,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	Status     int                 `json:"status,omitempty"`
	StatusText string              `json:"statusText,omitempty"`

	// Cause is the transport error the envelope was built from.
	Cause error `json:"-"`
}

func (e *ErrorEnvelope) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%d %s: %s", e.Status, e.StatusText, e.Message)
	case e.Message != "":
		return e.Message
	case e.Status != 0:
		return fmt.Sprintf("request failed with status code %d", e.Status)
	case e.Cause != nil:
		return e.Cause.Error()
	}
	return "request failed"
}

func (e *ErrorEnvelope) Unwrap() error {
	return e.Cause
}

// HasFieldErrors reports whether the envelope carries per-field messages.
func (e *ErrorEnvelope) HasFieldErrors() bool {
	return len(e.Errors) > 0
}

// decodeResponse builds a Response from a transport response. A JSON object
// with a "data" key is treated as an envelope; any other JSON body is taken
// as the payload itself. Status and status text come from the body when it
// has them and from the status line otherwise.
func decodeResponse[T any](resp *transport.Response) (*Response[T], error) {
	out := &Response[T]{}

	body := bytes.TrimSpace(resp.Data)
	var fields map[string]json.RawMessage
	switch {
	case len(body) == 0:
	case body[0] == '{' && json.Unmarshal(body, &fields) == nil && fields["data"] != nil:
		if string(fields["data"]) != "null" {
			if err := decodePayload(fields["data"], out); err != nil {
				return nil, err
			}
		}
		// Envelope metadata is optional and loosely typed across backends.
		_ = json.Unmarshal(fields["status"], &out.Status)
		_ = json.Unmarshal(fields["statusText"], &out.StatusText)
	default:
		if err := decodePayload(body, out); err != nil {
			return nil, err
		}
	}
	if raw, ok := fields["message"]; ok {
		_ = json.Unmarshal(raw, &out.Message)
	}

	if out.Status == 0 {
		out.Status = resp.Status
	}
	if out.StatusText == "" {
		out.StatusText = resp.StatusText
	}
	return out, nil
}

func decodePayload[T any](body []byte, out *Response[T]) error {
	var payload T
	if err := json.Unmarshal(body, &payload); err != nil {
		return apperrors.NewRequestError("failed to decode response", err)
	}
	out.Data = &payload
	return nil
}

// normalizeError converts a transport failure into an ErrorEnvelope. Failures
// without a response (network errors) carry the error text as the message.
func normalizeError(err error) *ErrorEnvelope {
	env := &ErrorEnvelope{Cause: err}

	resp := transport.ResponseOf(err)
	if resp == nil {
		env.Message = err.Error()
		return env
	}

	var body map[string]json.RawMessage
	if len(bytes.TrimSpace(resp.Data)) > 0 && json.Unmarshal(resp.Data, &body) == nil {
		env.Data = body["data"]
		env.Message = messageText(body["message"])
		env.Errors = fieldErrors(body["errors"])
	}
	env.Status = resp.Status
	env.StatusText = resp.StatusText
	return env
}

// messageText accepts a string or a list of strings. Other JSON values are
// kept as raw text.
func messageText(data json.RawMessage) string {
	if len(data) == 0 || string(data) == "null" {
		return ""
	}
	var text string
	if json.Unmarshal(data, &text) == nil {
		return text
	}
	var list []string
	if json.Unmarshal(data, &list) == nil {
		return strings.Join(list, "; ")
	}
	return string(data)
}

// fieldErrors accepts both {"field": ["a", "b"]} and {"field": "a"}.
func fieldErrors(data json.RawMessage) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	out := make(map[string][]string, len(raw))
	for field, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			out[field] = list
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			out[field] = []string{single}
		}
	}
	return out
}
