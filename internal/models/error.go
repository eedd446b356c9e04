package models

import "strings"

// APIError is the single error envelope returned by the API.
// Code discriminates the failure, Error carries the first message and
// Errors the full list, so clients reading either key get the message.
type APIError struct {
	Code   string   `json:"code"`
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// Error code constants
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
)

// NewAPIError creates a new API error with the given code and messages
func NewAPIError(code string, messages ...string) APIError {
	err := APIError{
		Code:   code,
		Errors: messages,
	}
	if len(messages) > 0 {
		err.Error = messages[0]
	} else {
		err.Errors = []string{}
	}
	return err
}

// NotFoundError reports that a referenced entity does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError with the given message
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// ValidationError reports input that violates a model invariant
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError creates a ValidationError holding the given messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
