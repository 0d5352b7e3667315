package models

import "time"

// Status possíveis de um ticket de suporte
const (
	TicketAberto     = "aberto"
	TicketRespondido = "respondido"
	TicketFechado    = "fechado"
)

// SupportTicket - mensagem enviada pelo formulário de contato.
// Status e created_at são controlados pelo servidor.
type SupportTicket struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:120;not null"`
	Email     string    `json:"email" gorm:"size:254;not null"`
	Subject   string    `json:"subject" gorm:"size:200"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'aberto';not null"`
	CreatedAt time.Time `json:"created_at"`
}
