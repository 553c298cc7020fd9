package validators

import (
	"regexp"
	"strings"
)

// Placas brasileiras: padrão antigo (ABC1234) e Mercosul (ABC1D23).
var plateRe = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

func IsPlateValid(plate string) bool {
	return plateRe.MatchString(NormalizePlate(plate))
}

// NormalizePlate deixa a placa no formato canônico usado no índice único.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
