package controllers

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/caianesantos/tripMind/models"
	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type UserController struct {
	RDB *redis.Client
}

func NewUserController(rdb *redis.Client) *UserController {
	return &UserController{RDB: rdb}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (r *RegisterRequest) Validate() fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Email) == "" {
		errs.add("email", msgRequired)
	} else if !validEmail(r.Email) {
		errs.add("email", msgInvalidEmail)
	}
	if r.Password == "" {
		errs.add("password", msgRequired)
	} else if len(r.Password) < 8 {
		errs.add("password", "Certifique-se de que este campo tenha no mínimo 8 caracteres.")
	}
	return errs
}

// POST /accounts/register
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if errs := req.Validate(); !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	db := utils.GetDB()
	email := strings.TrimSpace(req.Email)

	// Duplicidade de email é case-insensitive
	var count int64
	if err := db.Model(&models.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error; err != nil {
		utils.LogError(err, "register: duplicate check")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar email"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, fieldErrors{"email": {"Email já cadastrado."}})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError(err, "register: hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	user := models.User{
		Username:  email,
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	// Usuário e perfil nascem juntos, na mesma transação
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID, Phone: strings.TrimSpace(req.Phone)}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
	if err != nil {
		// Corrida com outro registro do mesmo email bate no índice único
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "UNIQUE") {
			c.JSON(http.StatusConflict, fieldErrors{"email": {"Email já cadastrado."}})
			return
		}
		utils.LogError(err, "register: create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, os.Getenv("JWT_SECRET"))
	if err != nil {
		utils.LogError(err, "register: generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Email) == "" {
		errs.add("email", msgRequired)
	}
	if r.Password == "" {
		errs.add("password", msgRequired)
	}
	return errs
}

// POST /accounts/login
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}
	if errs := req.Validate(); !errs.ok() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	db := utils.GetDB()
	var user models.User
	result := db.Preload("Profile").Where("LOWER(email) = LOWER(?)", strings.TrimSpace(req.Email)).First(&user)
	if result.Error != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas."})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas."})
		return
	}

	token, err := utils.GenerateJWT(user.ID, os.Getenv("JWT_SECRET"))
	if err != nil {
		utils.LogError(err, "login: generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GET /accounts/me
func (uc *UserController) Me(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Não encontrado."})
		return
	}

	c.JSON(http.StatusOK, user)
}

// POST /accounts/logout - coloca o token atual na blacklist até expirar
func (uc *UserController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" || uc.RDB == nil {
		c.JSON(http.StatusOK, gin.H{"status": "logout efetuado"})
		return
	}

	ttl := int64(0)
	if claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET")); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			ttl = int64(exp) - time.Now().Unix()
		}
	}
	if ttl > 0 {
		uc.RDB.Set(context.Background(), "blacklist:"+token, "1", time.Duration(ttl)*time.Second)
	}

	c.JSON(http.StatusOK, gin.H{"status": "logout efetuado"})
}
