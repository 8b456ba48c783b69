package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

type ClubController struct {
	DB *gorm.DB
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{DB: db}
}

// canAccessClub: admins see every club, a club leader only their own.
func canAccessClub(c *gin.Context, clubID uint) bool {
	role, _ := c.Get("role")
	if role != models.RoleClubLeader {
		return true
	}
	ownClubID, exists := c.Get("club_id")
	if !exists {
		return false
	}
	own, ok := ownClubID.(uint)
	return ok && own == clubID
}

// GetClub -> club detail.
func (cc *ClubController) GetClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.NewValidationError("club_id", c.Param("club_id")))
		return
	}

	if !canAccessClub(c, uint(clubID)) {
		utils.RespondError(c, http.StatusForbidden, errors.New("Access denied"))
		return
	}

	var club models.Club
	if err := cc.DB.First(&club, uint(clubID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Club not found"))
			return
		}
		utils.ErrorLogger.Printf("Club lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetClubMetrics -> dashboard numbers for one club.
func (cc *ClubController) GetClubMetrics(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.NewValidationError("club_id", c.Param("club_id")))
		return
	}

	if !canAccessClub(c, uint(clubID)) {
		utils.RespondError(c, http.StatusForbidden, errors.New("Access denied"))
		return
	}

	var club models.Club
	if err := cc.DB.First(&club, uint(clubID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("Club not found"))
			return
		}
		utils.ErrorLogger.Printf("Club lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	var pendingRequests int64
	err = cc.DB.Model(&models.Request{}).
		Where("club_id = ? AND status = ?", club.ClubID, models.StatusPending).
		Count(&pendingRequests).Error
	if err != nil {
		utils.ErrorLogger.Printf("Pending request count failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var upcomingEvents int64
	err = cc.DB.Model(&models.Request{}).
		Where("club_id = ? AND request_type = ? AND status = ? AND event_date >= ?",
			club.ClubID, models.TypeEvent, models.StatusApproved, today).
		Count(&upcomingEvents).Error
	if err != nil {
		utils.ErrorLogger.Printf("Upcoming event count failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_members":          club.TotalMembers,
		"pending_requests":       pendingRequests,
		"upcoming_events":        upcomingEvents,
		"current_budget":         club.Budget,
		"current_budget_display": utils.FormatBudget(club.Budget),
	})
}
