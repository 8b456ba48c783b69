package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetAllRequests -> every request across all clubs, SU_ADMIN only.
// The actor is identified by the user_id query parameter.
func (ac *AdminController) GetAllRequests(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("User ID required"))
		return
	}

	var user models.User
	if err := ac.DB.First(&user, uint(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusForbidden, errors.New("Only SU_ADMIN can access all requests"))
			return
		}
		utils.ErrorLogger.Printf("Admin listing lookup failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	if user.Role != models.RoleSUAdmin {
		utils.RespondError(c, http.StatusForbidden, errors.New("Only SU_ADMIN can access all requests"))
		return
	}

	var requests []models.Request
	if err := ac.DB.Preload("Club").Order("created_at ASC").Find(&requests).Error; err != nil {
		utils.ErrorLogger.Printf("Admin request listing failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	summaries := make([]gin.H, 0, len(requests))
	for _, r := range requests {
		summary := requestSummary(&r)
		summary["club_id"] = r.ClubID
		// The club FK is declared required, but an orphaned row must not
		// break the whole listing.
		if r.Club != nil {
			summary["club_name"] = r.Club.ClubName
		} else {
			summary["club_name"] = "Unknown Club"
		}
		summaries = append(summaries, summary)
	}
	c.JSON(http.StatusOK, summaries)
}

// ReviewRequest -> move a pending request to APPROVED, REJECTED or
// CANCELLED and record the reviewer. Admin roles only.
func (ac *AdminController) ReviewRequest(c *gin.Context) {
	requestID := c.Param("request_id")
	actorID := c.GetUint("user_id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	status := models.RequestStatus(body.Status)
	if !status.IsReviewOutcome() {
		utils.RespondError(c, http.StatusBadRequest, utils.NewValidationError("status", body.Status))
		return
	}

	var request models.Request
	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "request_id = ?", requestID).Error; err != nil {
			return err
		}

		request.Status = status
		request.ReviewedBy = &actorID
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		notif := models.Notification{
			UserID:  request.SubmittedBy,
			Title:   "Request reviewed",
			Message: fmt.Sprintf("Your request %q is now %s", request.Title, status),
			Type:    "REQUEST_REVIEW",
		}
		return tx.Create(&notif).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("request not found"))
			return
		}
		utils.ErrorLogger.Printf("Request review failed: %v", txErr)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	utils.InfoLogger.Printf("Request %d reviewed by user %d -> %s", request.RequestID, actorID, status)

	c.JSON(http.StatusOK, gin.H{
		"message": "Request reviewed",
		"request": request,
	})
}
