package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non-digit in code %q", code)
		}
	}
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateCode()] = true
	}
	// Com 50 sorteios de 6 dígitos, colisão total é sinal de gerador
	// quebrado.
	assert.Greater(t, len(seen), 1)
}
