package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// ValidationError lists the fields that made a job payload unacceptable.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
	Message       string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if len(e.MissingFields) > 0 {
		return "Missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	return "Invalid fields: " + strings.Join(e.InvalidFields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
