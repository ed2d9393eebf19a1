package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the backend. The three backend services
// report errors in different shapes; parseError folds them into one.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

type errorBody struct {
	// data API
	Code    any    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
	// auth
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
}

func parseError(status int, body []byte) *APIError {
	e := &APIError{Status: status}

	var b errorBody
	if err := json.Unmarshal(body, &b); err != nil {
		e.Message = strings.TrimSpace(string(body))
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
		return e
	}

	switch code := b.Code.(type) {
	case string:
		e.Code = code
	case float64:
		e.Code = fmt.Sprintf("%d", int(code))
	}
	if b.ErrorCode != "" {
		e.Code = b.ErrorCode
	}
	if e.Code == "" && b.Error != "" && b.ErrorDescription != "" {
		e.Code = b.Error
	}

	e.Message = firstNonEmpty(b.Message, b.Msg, b.ErrorDescription, b.Error, http.StatusText(status))
	e.Details = b.Details
	e.Hint = b.Hint
	return e
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
