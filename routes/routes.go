package routes

import (
	"os"
	"strings"

	"invoicegen-backend/config"
	"invoicegen-backend/controllers"
	"invoicegen-backend/services"
	"invoicegen-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(settings *config.SettingsStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	db := config.DB
	accounts := services.NewAccountsService(db)
	catalog := services.NewCatalogService(db)
	renderer := services.NewDocumentRenderer(settings)
	invoicing := services.NewInvoicingService(db, renderer, settings)
	search := services.NewSearchService(db)

	authController := controllers.NewAuthController(accounts, db)
	itemController := controllers.NewItemController(catalog)
	invoiceController := controllers.NewInvoiceController(invoicing, search)
	settingsController := controllers.NewSettingsController(settings)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes (per-admin)
		items := api.Group("/items")
		{
			items.POST("", itemController.CreateItem)
			items.GET("", itemController.GetItems)
			items.DELETE("/:name", itemController.DeleteItem)
			items.GET("/:name/cart-line", itemController.GetItemCartLine)
		}

		// Invoice routes (search and detail are unscoped by design)
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:number", invoiceController.GetInvoice)
		}

		// Settings routes
		api.GET("/settings", settingsController.GetSettings)
		api.PUT("/settings", settingsController.UpdateSettings)
	}

	return r
}
