package notify

import (
	"context"
	"log"
	"strings"
)

// Messenger envia uma mensagem de texto para um destinatário WhatsApp.
type Messenger interface {
	Send(ctx context.Context, to string, body string) error
}

// NoopMessenger é o null object usado quando as credenciais do provedor
// não estão configuradas: a notificação vira no-op em vez de erro.
type NoopMessenger struct{}

func (NoopMessenger) Send(ctx context.Context, to string, body string) error {
	return nil
}

// NewMessenger escolhe a implementação uma única vez na subida do
// processo. SID de conta Twilio sempre começa com "AC"; qualquer coisa
// diferente é tratada como credencial ausente.
func NewMessenger(accountSID, authToken, from string) Messenger {
	if accountSID == "" || authToken == "" || !strings.HasPrefix(accountSID, "AC") {
		log.Println("notify: twilio não configurado, notificações desativadas")
		return NoopMessenger{}
	}

	return NewTwilioMessenger(accountSID, authToken, from)
}
