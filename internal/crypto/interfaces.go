package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns a password into the value kept at rest and checks
// candidates against it.
//
// Implementations must give the same outcome for an unknown account and a
// wrong password; callers rely on [PasswordHasher.Compare] returning a plain
// boolean for that.
type PasswordHasher interface {
	// Hash returns the at-rest form of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches the stored value.
	Compare(stored, password string) bool
}
