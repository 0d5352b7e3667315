package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/caianesantos/tripMind/models"
	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SavedController struct {
	db *gorm.DB
}

func NewSavedController() *SavedController {
	return &SavedController{db: utils.GetDB()}
}

// POST /itineraries/save - idempotente: repetir devolve o mesmo saved_id
func (sc *SavedController) Save(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req struct {
		ItineraryID uint `json:"itinerary_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ItineraryID == 0 {
		c.JSON(http.StatusBadRequest, fieldErrors{"itinerary_id": {msgRequired}})
		return
	}

	var itinerary models.Itinerary
	if err := sc.db.First(&itinerary, req.ItineraryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Não encontrado."})
		return
	}

	var saved models.SavedItinerary
	err := sc.db.Where("user_id = ? AND itinerary_id = ?", userID, itinerary.ID).First(&saved).Error
	if err == nil {
		c.JSON(http.StatusCreated, gin.H{"saved_id": saved.ID})
		return
	}

	saved = models.SavedItinerary{UserID: userID, ItineraryID: itinerary.ID}
	if err := sc.db.Create(&saved).Error; err != nil {
		// Corrida com outro save do mesmo par: o índice único segura, relemos a linha
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "UNIQUE") {
			if err := sc.db.Where("user_id = ? AND itinerary_id = ?", userID, itinerary.ID).First(&saved).Error; err == nil {
				c.JSON(http.StatusCreated, gin.H{"saved_id": saved.ID})
				return
			}
		}
		utils.LogError(err, "saved: create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar roteiro"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved_id": saved.ID})
}

// GET /itineraries/saved - marcadores do caller, mais recentes primeiro
func (sc *SavedController) List(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var saved []models.SavedItinerary
	if err := sc.db.Preload("Itinerary").Where("user_id = ?", userID).
		Order("saved_at DESC, id DESC").Find(&saved).Error; err != nil {
		utils.LogError(err, "saved: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar salvos"})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DELETE /itineraries/saved/:id - só apaga marcador do próprio caller
func (sc *SavedController) Delete(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Não encontrado."})
		return
	}

	var saved models.SavedItinerary
	if err := sc.db.Where("id = ? AND user_id = ?", id, userID).First(&saved).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Não encontrado."})
		return
	}

	if err := sc.db.Delete(&saved).Error; err != nil {
		utils.LogError(err, "saved: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir"})
		return
	}
	c.Status(http.StatusNoContent)
}
