package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessengerRequiresTwilioSID(t *testing.T) {
	// Sem credenciais → no-op
	assert.IsType(t, NoopMessenger{}, NewMessenger("", "", ""))
	assert.IsType(t, NoopMessenger{}, NewMessenger("AC123", "", "+5511999990000"))

	// SID que não é de conta Twilio ("AC...") → no-op
	assert.IsType(t, NoopMessenger{}, NewMessenger("SK123", "token", "+5511999990000"))

	assert.IsType(t, &TwilioMessenger{}, NewMessenger("AC123", "token", "+5511999990000"))
}
