package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

// seed accounts created with plaintext passwords before hashing was
// introduced; InitHash rewrites whichever of them is still plaintext.
var legacyAccounts = []struct {
	Email    string
	Password string
}{
	{"farahghaly@nu.edu.eg", "nimun123"},
	{"omarsamir@nu.edu.eg", "rpm123"},
	{"omarkhaled@nu.edu.eg", "icpc123"},
	{"rofaidaelshobaky@nu.edu.eg", "ieee123"},
	{"ginamowafy@nu.edu.eg", "adminSLO"},
	{"janayaman@nu.edu.eg", "adminSU"},
}

// InitHash -> one-off password hash migration. Idempotent: rows that
// already hold a bcrypt hash are left alone.
func (mc *MaintenanceController) InitHash(c *gin.Context) {
	migrated := 0
	for _, account := range legacyAccounts {
		var user models.User
		if err := mc.DB.Where("email = ?", account.Email).First(&user).Error; err != nil {
			continue
		}
		if utils.IsBcryptHash(user.PasswordHash) {
			continue
		}

		hashed, err := utils.HashPassword(account.Password)
		if err != nil {
			utils.ErrorLogger.Printf("Hash migration failed for %s: %v", account.Email, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			return
		}
		if err := mc.DB.Model(&user).Update("password_hash", hashed).Error; err != nil {
			utils.ErrorLogger.Printf("Hash migration update failed for %s: %v", account.Email, err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			return
		}
		migrated++
	}

	utils.InfoLogger.Printf("Password hash migration done, %d account(s) updated", migrated)
	c.JSON(http.StatusOK, gin.H{"msg": "Passwords hashed successfully!"})
}
