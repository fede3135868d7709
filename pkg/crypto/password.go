package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way bcrypt hash from the plaintext password.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
}

// ComparePassword reports whether plain matches the stored hash. A non-nil
// error means mismatch.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}
