package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetMyNotifications -> latest 20 notifications of the caller.
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	var notifs []models.Notification
	err := nc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&notifs).Error
	if err != nil {
		utils.ErrorLogger.Printf("Notification listing failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	c.JSON(http.StatusOK, notifs)
}

// MarkNotificationRead -> mark one of the caller's notifications read.
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	userID := c.GetUint("user_id")
	notifID := c.Param("notification_id")

	var notif models.Notification
	err := nc.DB.Where("notification_id = ? AND user_id = ?", notifID, userID).
		First(&notif).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
			return
		}
		utils.ErrorLogger.Printf("Notification lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	// Marking an already-read notification again is a harmless no-op.
	if !notif.IsRead {
		if err := nc.DB.Model(&notif).Update("is_read", true).Error; err != nil {
			utils.ErrorLogger.Printf("Notification update failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
