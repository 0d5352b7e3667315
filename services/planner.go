package services

import (
	"fmt"
	"time"

	"github.com/caianesantos/tripMind/models"
	"github.com/caianesantos/tripMind/utils"
)

type TransportOption struct {
	Provider string `json:"provider"`
	Price    int    `json:"price"`
	Type     string `json:"type"`
}

type LodgingOption struct {
	Name          string  `json:"name"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
}

type Activity struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Cost  int    `json:"cost"`
}

// Plan - sugestão fabricada pelo planejador para uma busca
type Plan struct {
	TransportOptions []TransportOption
	LodgingOptions   []LodgingOption
	Activities       []Activity
	AISummary        string
	TotalBudget      int
}

// Orçamento base por nível; nível desconhecido cai no valor intermediário de 4000
var baseBudgets = map[string]int{
	models.BudgetEconomico:     2500,
	models.BudgetIntermediario: 4500,
	models.BudgetPremium:       9000,
}

const defaultBaseBudget = 4000

// GeneratePlan fabrica um roteiro determinístico a partir da busca.
// Função pura: mesmas entradas produzem exatamente a mesma saída.
func GeneratePlan(origin, destination string, startDate, endDate time.Time, budgetLevel string) Plan {
	baseBudget, ok := baseBudgets[budgetLevel]
	if !ok {
		baseBudget = defaultBaseBudget
	}

	transport := []TransportOption{
		{Provider: "VoeFácil", Price: baseBudget * 30 / 100, Type: "Aéreo"},
		{Provider: "Rodovia+", Price: baseBudget * 15 / 100, Type: "Ônibus"},
	}
	lodging := []LodgingOption{
		{Name: "Hotel Central", PricePerNight: baseBudget * 8 / 100, Rating: 4.2},
		{Name: "Stay & Co.", PricePerNight: baseBudget * 5 / 100, Rating: 3.8},
	}
	activities := []Activity{
		{Day: 1, Title: "City tour guiado", Cost: 180},
		{Day: 2, Title: "Passeio cultural", Cost: 120},
		{Day: 3, Title: "Gastronomia local", Cost: 220},
	}

	// Datas invertidas ou iguais nunca dão erro: mínimo de 1 noite
	nights := int(endDate.Sub(startDate).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	totalBudget := baseBudget + nights*lodging[0].PricePerNight

	summary := fmt.Sprintf(
		"Roteiro %s para %s saindo de %s entre %s e %s. "+
			"Inclui opções de transporte e hospedagem balanceadas com o orçamento informado.",
		budgetLevel, destination, origin,
		utils.FormatDateBR(startDate), utils.FormatDateBR(endDate),
	)

	return Plan{
		TransportOptions: transport,
		LodgingOptions:   lodging,
		Activities:       activities,
		AISummary:        summary,
		TotalBudget:      totalBudget,
	}
}
