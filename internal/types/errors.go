package types

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a GameError
type ErrorCode string

const (
	// Card and deck errors
	ErrInvalidCard ErrorCode = "INVALID_CARD"
	ErrDeckEmpty   ErrorCode = "DECK_EMPTY"

	// Session errors
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrGameNotFound    ErrorCode = "GAME_NOT_FOUND"
	ErrRecorderError   ErrorCode = "RECORDER_ERROR"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrDatabaseError ErrorCode = "DATABASE_ERROR"
)

// GameError is the error type returned by the blackjack packages
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// NewGameErrorf creates a new GameError with a formatted message
func NewGameErrorf(code ErrorCode, format string, args ...interface{}) *GameError {
	return NewGameError(code, fmt.Sprintf(format, args...))
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError reports whether err, or anything it wraps, is a GameError with the given code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if !As(err, &gameErr) {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain and stores it in target
func As(err error, target **GameError) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.As(err, target)
}
