package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt cost used for every stored password.
const HashCost = 10

// HashPassword returns a salted bcrypt hash of plaintext. Two calls with the
// same input produce different hashes that both verify.
func HashPassword(plaintext string, cost int) (string, error) {
	pwd, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func CheckPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
