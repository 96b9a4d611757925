package services

import "errors"

// ErrSignInInterrupted is returned by Session.Login and Session.Register
// when a logout arrived while the request was in flight. The sign-in
// succeeded on the wire, but the logout wins and its result is discarded.
var ErrSignInInterrupted = errors.New("sign-in interrupted by logout")

// ValidationError is a local, pre-network rejection of user input. It is
// raised before any request is issued; match with errors.As.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
