package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/formsclient/internal/client/models"
)

var (
	// ErrRequestFailed matches every failed facade call.
	ErrRequestFailed = errors.New("request failed")
	ErrEmptyBody     = errors.New("empty response body")
)

// RequestError describes one failed backend call. StatusCode is zero when no
// response was received (network error, timeout, cancelled context).
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	// Message is the backend's "message" field, if the body carried one.
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
}

func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}

// HasResponse reports whether the backend answered at all.
func (e *RequestError) HasResponse() bool {
	return e.StatusCode != 0
}

// MessageOf returns the backend-provided message carried by err, if any.
func MessageOf(err error) (string, bool) {
	var re *RequestError
	if !errors.As(err, &re) || re.Message == "" {
		return "", false
	}
	return re.Message, true
}

func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}
	return er.Message
}
