package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/caianesantos/tripMind/models"
	"github.com/caianesantos/tripMind/services"
	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ItineraryController struct {
	db *gorm.DB
}

func NewItineraryController() *ItineraryController {
	return &ItineraryController{db: utils.GetDB()}
}

// Os cinco campos de entrada de um roteiro; o resto é gerado
type ItineraryRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	BudgetLevel string `json:"budget_level"`
}

func (r *ItineraryRequest) Validate() fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Origin) == "" {
		errs.add("origin", msgRequired)
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs.add("destination", msgRequired)
	}
	if strings.TrimSpace(r.StartDate) == "" {
		errs.add("start_date", msgRequired)
	} else if _, ok := parseDate(r.StartDate); !ok {
		errs.add("start_date", msgInvalidDate)
	}
	if strings.TrimSpace(r.EndDate) == "" {
		errs.add("end_date", msgRequired)
	} else if _, ok := parseDate(r.EndDate); !ok {
		errs.add("end_date", msgInvalidDate)
	}
	if strings.TrimSpace(r.BudgetLevel) == "" {
		errs.add("budget_level", msgRequired)
	} else if !validBudgetLevel(r.BudgetLevel) {
		errs.add("budget_level", msgInvalidTier)
	}
	return errs
}

// callerID devolve o dono autenticado ou nil para anônimo
func callerID(c *gin.Context) *uint {
	if id := c.GetInt("user_id"); id > 0 {
		uid := uint(id)
		return &uid
	}
	return nil
}

// POST /itineraries/search - aberto a anônimos; roda o planejador e persiste
func (ic *ItineraryController) Search(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if errs := req.Validate(); !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)
	plan := services.GeneratePlan(req.Origin, req.Destination, start, end, req.BudgetLevel)

	transport, _ := json.Marshal(plan.TransportOptions)
	lodging, _ := json.Marshal(plan.LodgingOptions)
	activities, _ := json.Marshal(plan.Activities)

	itinerary := models.Itinerary{
		UserID:           callerID(c),
		Origin:           strings.TrimSpace(req.Origin),
		Destination:      strings.TrimSpace(req.Destination),
		StartDate:        strings.TrimSpace(req.StartDate),
		EndDate:          strings.TrimSpace(req.EndDate),
		BudgetLevel:      req.BudgetLevel,
		AISummary:        plan.AISummary,
		TransportOptions: datatypes.JSON(transport),
		LodgingOptions:   datatypes.JSON(lodging),
		Activities:       datatypes.JSON(activities),
		TotalBudget:      plan.TotalBudget,
	}
	if err := ic.db.Create(&itinerary).Error; err != nil {
		utils.LogError(err, "itinerary search: create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar roteiro"})
		return
	}

	c.JSON(http.StatusCreated, itinerary)
}

// GET /itineraries - só os roteiros do caller, mais recentes primeiro
func (ic *ItineraryController) List(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var itineraries []models.Itinerary
	if err := ic.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&itineraries).Error; err != nil {
		utils.LogError(err, "itinerary list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar roteiros"})
		return
	}

	c.JSON(http.StatusOK, itineraries)
}

// POST /itineraries - criação manual; campos gerados ficam vazios
func (ic *ItineraryController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if errs := req.Validate(); !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	itinerary := models.Itinerary{
		UserID:           &userID,
		Origin:           strings.TrimSpace(req.Origin),
		Destination:      strings.TrimSpace(req.Destination),
		StartDate:        strings.TrimSpace(req.StartDate),
		EndDate:          strings.TrimSpace(req.EndDate),
		BudgetLevel:      req.BudgetLevel,
		TransportOptions: datatypes.JSON("[]"),
		LodgingOptions:   datatypes.JSON("[]"),
		Activities:       datatypes.JSON("[]"),
	}
	if err := ic.db.Create(&itinerary).Error; err != nil {
		utils.LogError(err, "itinerary create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar roteiro"})
		return
	}

	c.JSON(http.StatusCreated, itinerary)
}

// findOwned carrega um roteiro do caller; qualquer outra coisa é 404
func (ic *ItineraryController) findOwned(c *gin.Context) (*models.Itinerary, bool) {
	userID := uint(c.GetInt("user_id"))
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Não encontrado."})
		return nil, false
	}

	var itinerary models.Itinerary
	if err := ic.db.Where("id = ? AND user_id = ?", id, userID).First(&itinerary).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Não encontrado."})
		return nil, false
	}
	return &itinerary, true
}

// GET /itineraries/:id
func (ic *ItineraryController) Get(c *gin.Context) {
	itinerary, ok := ic.findOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// PUT /itineraries/:id - substitui os cinco campos de entrada
func (ic *ItineraryController) Put(c *gin.Context) {
	itinerary, ok := ic.findOwned(c)
	if !ok {
		return
	}

	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if errs := req.Validate(); !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	itinerary.Origin = strings.TrimSpace(req.Origin)
	itinerary.Destination = strings.TrimSpace(req.Destination)
	itinerary.StartDate = strings.TrimSpace(req.StartDate)
	itinerary.EndDate = strings.TrimSpace(req.EndDate)
	itinerary.BudgetLevel = req.BudgetLevel

	if err := ic.db.Save(itinerary).Error; err != nil {
		utils.LogError(err, "itinerary put")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar roteiro"})
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// PATCH /itineraries/:id - atualização parcial dos campos de entrada
func (ic *ItineraryController) Patch(c *gin.Context) {
	itinerary, ok := ic.findOwned(c)
	if !ok {
		return
	}

	var req struct {
		Origin      *string `json:"origin"`
		Destination *string `json:"destination"`
		StartDate   *string `json:"start_date"`
		EndDate     *string `json:"end_date"`
		BudgetLevel *string `json:"budget_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	errs := fieldErrors{}
	if req.Origin != nil {
		if strings.TrimSpace(*req.Origin) == "" {
			errs.add("origin", msgRequired)
		} else {
			itinerary.Origin = strings.TrimSpace(*req.Origin)
		}
	}
	if req.Destination != nil {
		if strings.TrimSpace(*req.Destination) == "" {
			errs.add("destination", msgRequired)
		} else {
			itinerary.Destination = strings.TrimSpace(*req.Destination)
		}
	}
	if req.StartDate != nil {
		if _, ok := parseDate(*req.StartDate); !ok {
			errs.add("start_date", msgInvalidDate)
		} else {
			itinerary.StartDate = strings.TrimSpace(*req.StartDate)
		}
	}
	if req.EndDate != nil {
		if _, ok := parseDate(*req.EndDate); !ok {
			errs.add("end_date", msgInvalidDate)
		} else {
			itinerary.EndDate = strings.TrimSpace(*req.EndDate)
		}
	}
	if req.BudgetLevel != nil {
		if !validBudgetLevel(*req.BudgetLevel) {
			errs.add("budget_level", msgInvalidTier)
		} else {
			itinerary.BudgetLevel = *req.BudgetLevel
		}
	}
	if !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	if err := ic.db.Save(itinerary).Error; err != nil {
		utils.LogError(err, "itinerary patch")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar roteiro"})
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// DELETE /itineraries/:id
func (ic *ItineraryController) Delete(c *gin.Context) {
	itinerary, ok := ic.findOwned(c)
	if !ok {
		return
	}

	if err := ic.db.Delete(itinerary).Error; err != nil {
		utils.LogError(err, "itinerary delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir roteiro"})
		return
	}
	c.Status(http.StatusNoContent)
}
