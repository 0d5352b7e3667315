package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/caianesantos/tripMind/models"
	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type NewsletterController struct {
	RDB *redis.Client
}

func NewNewsletterController(rdb *redis.Client) *NewsletterController {
	return &NewsletterController{RDB: rdb}
}

// POST /newsletter/subscribe
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, fieldErrors{"email": {msgRequired}})
		return
	}
	if !validEmail(email) {
		c.JSON(http.StatusBadRequest, fieldErrors{"email": {msgInvalidEmail}})
		return
	}

	// Freio contra double-submit; emails repetidos continuam permitidos no banco
	if ok, msg := utils.CanSubscribe(nc.RDB, strings.ToLower(email)); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}

	subscription := models.NewsletterSubscription{Email: email}
	if err := utils.GetDB().Create(&subscription).Error; err != nil {
		utils.LogError(err, "newsletter: create subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar inscrição"})
		return
	}
	utils.MarkSubscribed(nc.RDB, strings.ToLower(email))

	// Boas-vindas: melhor esforço, nunca derruba a inscrição
	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		body := fmt.Sprintf("Olá!\n\nSua inscrição na newsletter do tripMind foi confirmada (%s).", email)
		if err := utils.SendEmail(email, "tripMind: inscrição confirmada", body,
			smtpHost, os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
			utils.LogError(err, "newsletter: welcome email")
		}
	}

	c.JSON(http.StatusCreated, subscription)
}
