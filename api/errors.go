package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DaemonRequestError is returned when siad answers a request with a status
// outside of the 2xx range.
type DaemonRequestError struct {
	StatusCode int
	// Message is the "message" field of the JSON error body. It is only
	// meaningful when HasMessage is set.
	Message    string
	HasMessage bool
}

func (e *DaemonRequestError) Error() string {
	if !e.HasMessage {
		return fmt.Sprintf("HTTP code: %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP code: %d With message: %s", e.StatusCode, e.Message)
}

// newDaemonRequestError builds the error for a failed request, extracting the
// message from the body on a best-effort basis.
func newDaemonRequestError(statusCode int, body []byte) *DaemonRequestError {
	reqErr := &DaemonRequestError{StatusCode: statusCode}

	var errBody struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Message != nil {
		reqErr.Message = *errBody.Message
		reqErr.HasMessage = true
	}

	return reqErr
}

// IsDaemonError reports whether err is a DaemonRequestError carrying the
// given status code.
func IsDaemonError(err error, statusCode int) bool {
	var reqErr *DaemonRequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	return reqErr.StatusCode == statusCode
}
