package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5511999990000", DigitsOnly("+55 (11) 99999-0000"))
	assert.Equal(t, "5511999990000", DigitsOnly("5511999990000"))
	assert.Equal(t, "", DigitsOnly("whatsapp:+"))
	assert.Equal(t, "", DigitsOnly(""))
}
