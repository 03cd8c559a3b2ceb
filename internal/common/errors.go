// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Provider errors.
	ErrEmptyCompletion     = errors.New("no response from AI")
	ErrMalformedCompletion = errors.New("failed to parse AI response")

	// Recorder errors.
	ErrAlreadyRecording = errors.New("already recording")
	ErrNotRecording     = errors.New("not recording")
	ErrMicrophoneAccess = errors.New("microphone access failed")

	// Client state errors.
	ErrTranscribeInFlight = errors.New("transcription already in progress")
	ErrRecordingNotFound  = errors.New("recording not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidPriority    = errors.New("invalid priority")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
