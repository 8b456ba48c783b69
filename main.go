package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/config"
	"github.com/nu-studentlife/club-portal/router"
	"github.com/nu-studentlife/club-portal/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(db)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
