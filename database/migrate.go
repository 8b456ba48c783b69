package database

import (
	"sync"

	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

var (
	schemaOnce sync.Once
	schemaErr  error
)

// EnsureSchema creates the tables on first call and is a no-op after
// that, including under concurrent first requests.
func EnsureSchema(db *gorm.DB) error {
	schemaOnce.Do(func() {
		schemaErr = db.AutoMigrate(
			&models.Club{},
			&models.User{},
			&models.Room{},
			&models.Request{},
			&models.Notification{},
		)
		if schemaErr != nil {
			utils.ErrorLogger.Printf("Schema migration failed: %v", schemaErr)
			return
		}
		utils.InfoLogger.Println("Schema migration completed.")
	})
	return schemaErr
}
