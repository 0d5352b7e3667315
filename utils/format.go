package utils

import "time"

// FormatDateBR formata uma data no padrão brasileiro DD/MM/YYYY,
// usado apenas no texto do resumo gerado.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}
