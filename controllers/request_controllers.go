package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

// CreateRequest -> a club leader submits a request for their own club.
// The actor is authorized before the payload is validated, so a
// non-leader always gets 403 no matter what the payload looks like.
// The stored status is always PENDING no matter what the caller sent.
func (rc *RequestController) CreateRequest(c *gin.Context) {
	var req struct {
		UserID      uint    `json:"user_id" binding:"required"`
		ClubID      uint    `json:"club_id" binding:"required"`
		Title       string  `json:"title" binding:"required"`
		RequestType string  `json:"request_type" binding:"required"`
		Description string  `json:"description"`
		EventDate   string  `json:"event_date"`
		StartTime   string  `json:"start_time"`
		EndTime     string  `json:"end_time"`
		Location    *string `json:"location"`
		RoomID      *uint   `json:"room_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var request models.Request

	// One read-then-write sequence; a failed check leaves nothing behind.
	txErr := rc.DB.Transaction(func(tx *gorm.DB) error {
		var actor models.User
		if err := tx.First(&actor, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewAuthorizationError("Only club leaders can submit requests")
			}
			return err
		}

		if actor.Role != models.RoleClubLeader {
			return utils.NewAuthorizationError("Only club leaders can submit requests")
		}

		if actor.ClubID == nil || *actor.ClubID != req.ClubID {
			return utils.NewAuthorizationError("You can only submit requests for your own club")
		}

		requestType := models.RequestType(req.RequestType)
		if !requestType.IsValid() {
			return utils.NewValidationError("request_type", req.RequestType)
		}

		var eventDate *time.Time
		if req.EventDate != "" {
			parsed, err := time.Parse("2006-01-02", req.EventDate)
			if err != nil {
				return utils.NewValidationError("event_date", req.EventDate)
			}
			eventDate = &parsed
		}

		startTime, err := parseClockField("start_time", req.StartTime)
		if err != nil {
			return err
		}
		endTime, err := parseClockField("end_time", req.EndTime)
		if err != nil {
			return err
		}

		request = models.Request{
			ClubID:      req.ClubID,
			Title:       req.Title,
			Description: req.Description,
			RequestType: requestType,
			Status:      models.StatusPending,
			EventDate:   eventDate,
			StartTime:   startTime,
			EndTime:     endTime,
			Location:    req.Location,
			RoomID:      req.RoomID,
			SubmittedBy: actor.UserID,
		}
		return tx.Create(&request).Error
	})

	if txErr != nil {
		var authErr *utils.AuthorizationError
		if errors.As(txErr, &authErr) {
			utils.RespondError(c, http.StatusForbidden, authErr)
			return
		}
		var valErr *utils.ValidationError
		if errors.As(txErr, &valErr) {
			utils.RespondError(c, http.StatusBadRequest, valErr)
			return
		}
		utils.ErrorLogger.Printf("Request creation failed: %v", txErr)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	utils.InfoLogger.Printf("Request %d submitted by user %d for club %d (type=%s)",
		request.RequestID, request.SubmittedBy, request.ClubID, request.RequestType)

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Request submitted",
		"request_id": request.RequestID,
		"request":    request,
	})
}

// GetClubRequests -> all requests of one club, oldest first.
func (rc *RequestController) GetClubRequests(c *gin.Context) {
	clubID := c.Param("club_id")

	var requests []models.Request
	if err := rc.DB.Where("club_id = ?", clubID).Order("created_at ASC").Find(&requests).Error; err != nil {
		utils.ErrorLogger.Printf("Club request listing failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	summaries := make([]gin.H, 0, len(requests))
	for _, r := range requests {
		summaries = append(summaries, requestSummary(&r))
	}
	c.JSON(http.StatusOK, summaries)
}

func requestSummary(r *models.Request) gin.H {
	var eventDate interface{}
	if r.EventDate != nil {
		eventDate = r.EventDate.Format("2006-01-02")
	}
	return gin.H{
		"request_id": r.RequestID,
		"title":      r.Title,
		"type":       r.RequestType,
		"status":     r.Status,
		"event_date": eventDate,
		"created_at": r.CreatedAt,
	}
}

func parseClockField(field, value string) (*string, error) {
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return nil, utils.NewValidationError(field, value)
	}
	return &value, nil
}
