package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError rejects a submission before any state is touched
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ThrottledError rejects a submission inside the cooldown window. The
// message states the whole minutes remaining, rounded up.
type ThrottledError struct {
	WaitMinutes int
}

func (e *ThrottledError) Error() string {
	if e.WaitMinutes == 1 {
		return "Please wait 1 minute before submitting another review."
	}
	return fmt.Sprintf("Please wait %d minutes before submitting another review.", e.WaitMinutes)
}
