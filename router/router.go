package router

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/controllers"
	"github.com/nu-studentlife/club-portal/database"
	"github.com/nu-studentlife/club-portal/middlewares"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	allowedOrigin := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(allowedOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Schema is created lazily before the first handled request.
	r.Use(func(c *gin.Context) {
		if err := database.EnsureSchema(db); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			c.Abort()
			return
		}
		c.Next()
	})

	authCtrl := controllers.NewAuthController(db)
	requestCtrl := controllers.NewRequestController(db)
	adminCtrl := controllers.NewAdminController(db)
	clubCtrl := controllers.NewClubController(db)
	roomCtrl := controllers.NewRoomController(db)
	notifCtrl := controllers.NewNotificationController(db)
	maintCtrl := controllers.NewMaintenanceController(db)

	// Maintenance-only: one-off password hash migration for the legacy
	// seed accounts. Remove the route in hardened deployments.
	r.GET("/init-hash", maintCtrl.InitHash)

	api := r.Group("/api")
	{
		api.POST("/login", middlewares.NewLoginRateLimiter(), authCtrl.Login)
		api.POST("/requests", requestCtrl.CreateRequest)
		api.GET("/clubs/:club_id/requests", requestCtrl.GetClubRequests)
		api.GET("/admin/requests", adminCtrl.GetAllRequests)
	}

	authorized := r.Group("/api", middlewares.AuthMiddleware())
	{
		authorized.GET("/auth/me", authCtrl.Me)
		authorized.POST("/auth/logout", authCtrl.Logout)

		authorized.GET("/clubs/:club_id", clubCtrl.GetClub)
		authorized.GET("/clubs/:club_id/metrics", clubCtrl.GetClubMetrics)

		authorized.GET("/rooms", roomCtrl.GetAllRooms)

		authorized.GET("/notifications", notifCtrl.GetMyNotifications)
		authorized.PATCH("/notifications/:notification_id/read", notifCtrl.MarkNotificationRead)

		review := authorized.Group("",
			middlewares.RequireRole(models.RoleSUAdmin, models.RoleStudentLifeAdmin))
		review.PATCH("/admin/requests/:request_id/status", adminCtrl.ReviewRequest)
	}

	return r
}
