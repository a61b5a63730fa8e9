package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotConfigured is returned when no backend URL is set.
	ErrNotConfigured = errors.New("backend not configured (set backend.url)")
	// ErrNotAuthenticated is returned when a call needs a session and none is stored.
	ErrNotAuthenticated = errors.New("not logged in (run `tender login`)")
	// ErrNotFound is returned when a record lookup matches nothing.
	ErrNotFound = errors.New("record not found")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// errorBody covers the error shapes returned by the REST, auth and
// functions endpoints.
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func newAPIError(status int, body []byte) *APIError {
	var eb errorBody
	msg := ""
	if json.Unmarshal(body, &eb) == nil {
		for _, candidate := range []string{eb.Message, eb.ErrorDescription, eb.Msg, eb.Error} {
			if candidate != "" {
				msg = candidate
				break
			}
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}
