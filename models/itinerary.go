package models

import (
	"time"

	"gorm.io/datatypes"
)

// Níveis de orçamento aceitos pelo planejador
const (
	BudgetEconomico     = "economico"
	BudgetIntermediario = "intermediario"
	BudgetPremium       = "premium"
)

// Itinerary - roteiro gerado pela busca ou criado manualmente pelo usuário.
// Dono opcional: buscas anônimas gravam user_id nulo.
type Itinerary struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	UserID      *uint  `json:"-" gorm:"index"`
	Origin      string `json:"origin" gorm:"size:120;not null"`
	Destination string `json:"destination" gorm:"size:120;not null"`
	// Datas no formato "YYYY-MM-DD", como chegam do front
	StartDate   string `json:"start_date" gorm:"type:varchar(10);not null"`
	EndDate     string `json:"end_date" gorm:"type:varchar(10);not null"`
	BudgetLevel string `json:"budget_level" gorm:"type:varchar(20);not null"`

	// Campos gerados pelo planejador; nunca aceitos do cliente
	AISummary        string         `json:"ai_summary"`
	TransportOptions datatypes.JSON `json:"transport_options" gorm:"type:jsonb"`
	LodgingOptions   datatypes.JSON `json:"lodging_options" gorm:"type:jsonb"`
	Activities       datatypes.JSON `json:"activities" gorm:"type:jsonb"`
	TotalBudget      int            `json:"total_budget" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

// SavedItinerary - marcador (user, itinerary); o par é único no banco,
// o que mantém o save idempotente mesmo sob requisições concorrentes.
type SavedItinerary struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"not null;uniqueIndex:idx_saved_user_itinerary"`
	ItineraryID uint      `json:"-" gorm:"not null;uniqueIndex:idx_saved_user_itinerary"`
	SavedAt     time.Time `json:"saved_at" gorm:"autoCreateTime"`

	Itinerary Itinerary `json:"itinerary" gorm:"constraint:OnDelete:CASCADE"`
	User      User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
