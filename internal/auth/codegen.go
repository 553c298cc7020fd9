package auth

import "crypto/rand"

const CodeLength = 6

// GenerateCode produz um código numérico aleatório para login por
// telefone.
func GenerateCode() string {
	const digits = "0123456789"
	b := make([]byte, CodeLength)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = digits[int(b[i])%len(digits)]
	}
	return string(b)
}
