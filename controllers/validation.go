package controllers

import (
	"regexp"
	"strings"
	"time"

	"github.com/caianesantos/tripMind/models"
)

// Mensagens de validação no formato campo -> lista, igual ao front espera
const (
	msgRequired     = "Este campo é obrigatório."
	msgInvalidEmail = "Informe um endereço de email válido."
	msgInvalidDate  = "Data inválida. Use o formato AAAA-MM-DD."
	msgInvalidTier  = "Escolha inválida. Use: economico, intermediario ou premium."
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type fieldErrors map[string][]string

func (fe fieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe fieldErrors) ok() bool {
	return len(fe) == 0
}

func validEmail(s string) bool {
	return emailRx.MatchString(strings.TrimSpace(s))
}

// parseDate aceita só AAAA-MM-DD (formato de data do wire)
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func validBudgetLevel(s string) bool {
	switch s {
	case models.BudgetEconomico, models.BudgetIntermediario, models.BudgetPremium:
		return true
	}
	return false
}
