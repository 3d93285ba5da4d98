package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aiat-sdml/attendance-api/config"
	"github.com/aiat-sdml/attendance-api/models"
)

// Connect opens the configured database and migrates the schema. The handle
// is returned rather than stored in a package global so callers (and tests)
// own their own connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DSN())
	default:
		dial = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.Student{},
		&models.Subject{},
		&models.Attendance{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
