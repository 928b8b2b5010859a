package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes plaintext passwords and verifies candidates against
// stored hashes. bcrypt embeds a fresh random salt and its cost parameters
// in the output, so verification needs no side channel.
func Password(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// is never an error: it simply does not verify.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
