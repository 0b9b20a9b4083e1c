package models

import "time"

// SessionMarker is what the client remembers about the logged-in user
// between runs. It never holds the password.
type SessionMarker struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`

	// Token is the bearer token issued by the server, when there is one.
	Token string `json:"token,omitempty"`

	At time.Time `json:"at"`
}
