package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes plaintext passwords and checks candidates against a
// stored hash. The stored hash is opaque to callers; plaintext is never
// persisted or compared directly.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// BcryptHasher is the default PasswordHasher. Bcrypt salts internally, so two
// hashes of the same password differ.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
