package models

import "time"

// NewsletterSubscription - inscrição na newsletter. Sem unicidade de email:
// o schema original permite inscrições repetidas.
type NewsletterSubscription struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:254;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
