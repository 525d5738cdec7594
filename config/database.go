package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens the backing store. The default is a local SQLite file
// (pure-Go driver, no cgo); set DB_DRIVER=postgres and DB_URL for a
// PostgreSQL deployment. Both backends sit behind the same GORM API.
func ConnectDB() {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if os.Getenv("DB_DEBUG") == "true" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		db, err = gorm.Open(postgres.Open(os.Getenv("DB_URL")), gormConfig)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "salon.db"
		}
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	}

	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	DB = db
}
