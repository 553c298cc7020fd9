package validators

import "strings"

// DigitsOnly normaliza um telefone para apenas dígitos, pronto para o
// prefixo internacional do provedor de mensagens.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
