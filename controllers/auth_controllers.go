package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> resolve a user by email or university id, verify the
// password and hand out a JWT. Unknown users and wrong passwords get
// the same generic 401 so callers cannot enumerate accounts.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("identifier and password are required"))
		return
	}

	var user models.User
	err := ac.DB.Preload("Club").
		Where("email = ? OR university_id = ?", input.Identifier, input.Identifier).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("Login lookup failed: %v", err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
			return
		}
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.RespondError(c, http.StatusUnauthorized, utils.ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.ErrorLogger.Printf("Token generation failed for user %d: %v", user.UserID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}

	utils.InfoLogger.Printf("Login successful for user %d (role=%s)", user.UserID, user.Role)

	resp := gin.H{
		"user_id":  user.UserID,
		"fullname": user.Fullname,
		"role":     user.Role,
		"club_id":  user.ClubID,
		"token":    token,
	}
	if user.Club != nil {
		resp["club_name"] = user.Club.ClubName
		resp["logo_url"] = user.Club.LogoURL
	}
	c.JSON(http.StatusOK, resp)
}

// Me -> current user info from the JWT.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := ac.DB.Preload("Club").First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	resp := gin.H{
		"user_id":  user.UserID,
		"fullname": user.Fullname,
		"email":    user.Email,
		"role":     user.Role,
		"club_id":  user.ClubID,
	}
	if user.Club != nil {
		resp["club_name"] = user.Club.ClubName
		resp["logo_url"] = user.Club.LogoURL
	}
	c.JSON(http.StatusOK, resp)
}

// Logout -> blacklist the presented token for the rest of its life.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		utils.BlacklistToken(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
