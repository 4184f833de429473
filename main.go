package main

import (
	"os"

	"invoicegen-backend/config"
	"invoicegen-backend/models"
	"invoicegen-backend/routes"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	config.SetupLogger()
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.Admin{},
		&models.Item{},
		&models.Invoice{},
		&models.InvoiceItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	settings := config.NewSettingsStore(os.Getenv("SETTINGS_FILE"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(settings)
	log.Info().Str("port", port).Msg("starting invoicegen backend")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
