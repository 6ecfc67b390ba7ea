package validators

import "strings"

// IsPhoneValid aceita o formato que cai no wa.me: dígitos, com um "+"
// opcional na frente, entre 8 e 15 dígitos.
func IsPhoneValid(phone string) bool {
	p := strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if len(p) < 8 || len(p) > 15 {
		return false
	}

	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
