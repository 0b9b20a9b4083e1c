package models

// Role is the access level of an account.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to the user management endpoints.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account of the diary.
// Email is the unique key; the account is never updated in place and is
// removed only by an administrator together with everything it owns.
type User struct {
	// Email is the unique identifier of the user and the partition key of
	// every per-user collection.
	Email string `json:"email"`

	// Password holds the credential as received from the client on the way
	// in. At rest it holds the value produced by the configured password
	// hasher. It is never serialized back to clients.
	Password string `json:"password,omitempty"`

	// Role is either "user" or "admin".
	Role Role `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns a copy of u without the password.
func (u User) Public() User {
	u.Password = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
