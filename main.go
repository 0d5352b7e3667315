package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/caianesantos/tripMind/config"
	"github.com/caianesantos/tripMind/database"
	"github.com/caianesantos/tripMind/routes"
	"github.com/caianesantos/tripMind/utils"
)

func main() {
	// Fuso horário de Brasília para todos os timestamps e logs
	brLocation, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		brLocation = time.FixedZone("BRT", -3*60*60)
	}
	time.Local = brLocation

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Conexão com PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// *gorm.DB global para os controllers
	utils.SetDB(db)

	// Migração
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Redis: blacklist de tokens e limite de envio da newsletter
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	utils.SetRedis(rdb)
	log.Println("Connected to Redis")

	r := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	log.Printf("Starting tripMind API on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
