package common

import "strings"

// NormalizeCPF keeps only the digits, so "123.456.789-09" becomes "12345678909".
// Validation is done by the cpf tag.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
