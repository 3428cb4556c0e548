package service

import "errors"

var (
	// ErrInvalidInput is returned when a submitted field is empty or
	// exceeds its length limit. Handlers recover by flashing and
	// redirecting back to the originating form.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateTitle is returned when a movie with the submitted
	// title already exists.
	ErrDuplicateTitle = errors.New("item already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
