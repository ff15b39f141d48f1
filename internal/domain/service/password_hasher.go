// Package service declares the domain services the use cases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of password. It fails for passwords the
	// algorithm would silently truncate.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Comparison is constant time.
	Check(password, hash string) bool
}
