package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the backing store. The default is a single local SQLite
// file shared by every running instance of the tool; set DB_DRIVER=postgres
// with DB_URL to run against Postgres instead.
func ConnectDB() {
	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dialector = postgres.Open(os.Getenv("DB_URL"))
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "admin_accounts.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}
