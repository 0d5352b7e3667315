package utils

import "gorm.io/gorm"

// Handle global definido no startup (e substituído nos testes de API)
var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
