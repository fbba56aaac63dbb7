package services

import "math/rand"

const (
	DefaultCodeLength = 8
	codeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateUniqueCode returns length characters drawn uniformly from A-Z and 0-9.
// Codes are not checked against existing ones; collisions are accepted.
func GenerateUniqueCode(length int) string {
	if length <= 0 {
		length = DefaultCodeLength
	}

	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(code)
}
