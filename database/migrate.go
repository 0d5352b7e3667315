package database

import (
	"github.com/caianesantos/tripMind/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Itinerary{},
		&models.SavedItinerary{},
		&models.NewsletterSubscription{},
		&models.SupportTicket{},
	)
}
