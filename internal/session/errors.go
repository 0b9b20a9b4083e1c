package session

import "errors"

var (
	// ErrLoginInProgress is returned by Login while another login attempt
	// has not finished yet.
	ErrLoginInProgress = errors.New("login already in progress")

	// ErrNotLoggedIn is returned when an operation needs a logged-in user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoSession is returned by Restore when there is no usable session
	// marker.
	ErrNoSession = errors.New("no saved session")
)
