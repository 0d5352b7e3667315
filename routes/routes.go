package routes

import (
	"github.com/caianesantos/tripMind/controllers"
	"github.com/caianesantos/tripMind/middleware"
	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter cria o gin.Engine e registra todos os endpoints da API
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS antes dos roteadores
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5500", "https://tripmind.com.br", "https://www.tripmind.com.br"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	rdb := utils.GetRedis()
	userController := controllers.NewUserController(rdb)
	itineraryController := controllers.NewItineraryController()
	savedController := controllers.NewSavedController()
	newsletterController := controllers.NewNewsletterController(rdb)
	supportController := controllers.NewSupportController()

	accounts := r.Group("/accounts")
	{
		accounts.POST("/register", userController.Register)
		accounts.POST("/login", userController.Login)
		accounts.GET("/me", middleware.JWTAuthMiddleware(), userController.Me)
		accounts.POST("/logout", middleware.JWTAuthMiddleware(), userController.Logout)
	}

	// A busca aceita anônimos; o restante exige dono autenticado
	r.POST("/itineraries/search", middleware.OptionalJWTMiddleware(), itineraryController.Search)

	itineraries := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	{
		itineraries.GET("", itineraryController.List)
		itineraries.POST("", itineraryController.Create)
		itineraries.POST("/save", savedController.Save)
		itineraries.GET("/saved", savedController.List)
		itineraries.DELETE("/saved/:id", savedController.Delete)
		itineraries.GET("/:id", itineraryController.Get)
		itineraries.PUT("/:id", itineraryController.Put)
		itineraries.PATCH("/:id", itineraryController.Patch)
		itineraries.DELETE("/:id", itineraryController.Delete)
	}

	r.POST("/newsletter/subscribe", newsletterController.Subscribe)
	r.POST("/support", supportController.Submit)

	return r
}
