package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/caianesantos/tripMind/models"
	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-gonic/gin"
)

type SupportController struct{}

func NewSupportController() *SupportController {
	return &SupportController{}
}

type SupportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *SupportRequest) Validate() fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		errs.add("name", msgRequired)
	}
	if strings.TrimSpace(r.Email) == "" {
		errs.add("email", msgRequired)
	} else if !validEmail(r.Email) {
		errs.add("email", msgInvalidEmail)
	}
	if strings.TrimSpace(r.Message) == "" {
		errs.add("message", msgRequired)
	}
	return errs
}

// POST /support - status e created_at são do servidor; status do cliente é ignorado
func (sc *SupportController) Submit(c *gin.Context) {
	var req SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if errs := req.Validate(); !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	ticket := models.SupportTicket{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  models.TicketAberto,
	}
	if err := utils.GetDB().Create(&ticket).Error; err != nil {
		utils.LogError(err, "support: create ticket")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao registrar mensagem"})
		return
	}

	// Aviso para a caixa de suporte: melhor esforço
	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		inbox := os.Getenv("SUPPORT_INBOX")
		if inbox == "" {
			inbox = "suporte@tripmind.com.br"
		}
		subject := ticket.Subject
		if subject == "" {
			subject = "Suporte"
		}
		body := fmt.Sprintf("Novo ticket #%d de %s <%s>:\n\n%s", ticket.ID, ticket.Name, ticket.Email, ticket.Message)
		if err := utils.SendEmail(inbox, "tripMind suporte: "+subject, body,
			smtpHost, os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
			utils.LogError(err, "support: notify email")
		}
	}

	c.JSON(http.StatusCreated, ticket)
}
