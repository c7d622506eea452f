package auth

import "golang.org/x/crypto/bcrypt"

// HashSecret returns the bcrypt hash of secret. Used for passwords and
// external-system access keys.
func HashSecret(secret string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
}

// CheckSecret reports whether secret matches hash.
func CheckSecret(hash []byte, secret string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}
