package services

import "golang.org/x/crypto/bcrypt"

// hashPassword returns a bcrypt hash of the password. The per-call salt is
// embedded in the output.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword reports whether the password matches the hash. A malformed
// hash verifies as false rather than failing.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
