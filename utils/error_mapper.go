package utils

import (
	"context"
	"errors"
	"net/http"
)

// HTTPErrorInfo is the status, public message and retry hint reported for an error.
type HTTPErrorInfo struct {
	Status    int
	Message   string
	Retryable bool
}

type statusRule struct {
	target error
	info   HTTPErrorInfo
}

// ErrorMapper resolves errors to HTTP responses. Deadline and cancellation
// errors are handled before any registered rule; rules are tried in order.
type ErrorMapper struct {
	rules    []statusRule
	fallback HTTPErrorInfo
}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		fallback: HTTPErrorInfo{Status: http.StatusInternalServerError, Message: "internal server error"},
	}
}

// WithMapping registers a rule for errors matching err under errors.Is.
// Statuses of 503 and above are flagged retryable.
func (m *ErrorMapper) WithMapping(err error, status int, message string) *ErrorMapper {
	m.rules = append(m.rules, statusRule{
		target: err,
		info:   HTTPErrorInfo{Status: status, Message: message, Retryable: status >= http.StatusServiceUnavailable},
	})
	return m
}

// WithDefault replaces the response used when no rule matches.
func (m *ErrorMapper) WithDefault(status int, message string) *ErrorMapper {
	m.fallback = HTTPErrorInfo{Status: status, Message: message}
	return m
}

func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	switch {
	case err == nil:
		return HTTPErrorInfo{Status: http.StatusOK}
	case errors.Is(err, context.DeadlineExceeded):
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Message: "request timeout", Retryable: true}
	case errors.Is(err, context.Canceled):
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Message: "request cancelled", Retryable: true}
	}
	for _, rule := range m.rules {
		if errors.Is(err, rule.target) {
			return rule.info
		}
	}
	return m.fallback
}
