package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var (
	ErrAPIKeyRequired = errors.New(
		"httpclient: API key is required. Check documentation - https://maps.olakrutrim.com/docs/auth",
	)
	ErrServiceError = errors.New("httpclient: service error")
	ErrAuthFailed   = errors.New("httpclient: authentication failed")
)

// ServiceError is returned for every response outside the 2xx range.
type ServiceError struct {
	StatusCode int
	Status     string
	Message    string
	RequestID  string
	Body       []byte
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("httpclient: service returned status %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("httpclient: service returned status %d", e.StatusCode)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrServiceError)
}

func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

func NewServiceError(statusCode int, status, message, requestID string, body []byte) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
		RequestID:  requestID,
		Body:       body,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	return nil, false
}

//nolint:tagliatelle
type ErrorResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Message      string `json:"message"`
}

func serviceErrorFromResponse(resp *resty.Response) *ServiceError {
	body := resp.Body()
	message := string(body)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.ErrorMessage != "":
			message = errResp.ErrorMessage
		case errResp.Message != "":
			message = errResp.Message
		}
	}

	return NewServiceError(
		resp.StatusCode(),
		statusText(resp),
		message,
		resp.Header().Get(HeaderXRequestID),
		body,
	)
}
