// Package service declares the infrastructure capabilities the studio use
// cases call: hashing, tokens, storage, image generation, rendering and events.
package service

// PasswordHasher hashes account passwords. Check never returns an error:
// a malformed hash simply does not match.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
