package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/nu-studentlife/club-portal/controllers"
	"github.com/nu-studentlife/club-portal/middlewares"
	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/utils"
)

func setupNotificationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	notifCtrl := controllers.NewNotificationController(db)
	authed := r.Group("/api", middlewares.AuthMiddleware())
	authed.GET("/notifications", notifCtrl.GetMyNotifications)
	authed.PATCH("/notifications/:notification_id/read", notifCtrl.MarkNotificationRead)
	return r
}

func TestNotificationsScopedToCaller(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice@nu.edu.eg", "pass", models.RoleClubLeader, nil)
	bob := seedUser(t, db, "bob@nu.edu.eg", "pass", models.RoleClubLeader, nil)

	assert.NoError(t, db.Create(&models.Notification{
		UserID: alice.UserID, Title: "For Alice", Message: "hello alice",
	}).Error)
	assert.NoError(t, db.Create(&models.Notification{
		UserID: bob.UserID, Title: "For Bob", Message: "hello bob",
	}).Error)

	token, err := utils.GenerateToken(alice)
	assert.NoError(t, err)

	r := setupNotificationRouter(db)
	w := getWithToken(t, r, "/api/notifications", token)
	assert.Equal(t, http.StatusOK, w.Code)

	var notifs []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifs))
	assert.Len(t, notifs, 1)
	assert.Equal(t, "For Alice", notifs[0]["title"])
}

func TestMarkNotificationRead(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	alice := seedUser(t, db, "alice@nu.edu.eg", "pass", models.RoleClubLeader, nil)
	bob := seedUser(t, db, "bob@nu.edu.eg", "pass", models.RoleClubLeader, nil)

	notif := models.Notification{UserID: alice.UserID, Title: "Ping", Message: "msg"}
	assert.NoError(t, db.Create(&notif).Error)

	r := setupNotificationRouter(db)

	// Bob cannot flip Alice's notification.
	bobToken, err := utils.GenerateToken(bob)
	assert.NoError(t, err)
	req, _ := http.NewRequest("PATCH",
		fmt.Sprintf("/api/notifications/%d/read", notif.NotificationID), nil)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	aliceToken, err := utils.GenerateToken(alice)
	assert.NoError(t, err)
	req, _ = http.NewRequest("PATCH",
		fmt.Sprintf("/api/notifications/%d/read", notif.NotificationID), nil)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Notification
	assert.NoError(t, db.First(&stored, notif.NotificationID).Error)
	assert.True(t, stored.IsRead)

	// Marking an already-read notification again is a harmless no-op.
	req, _ = http.NewRequest("PATCH",
		fmt.Sprintf("/api/notifications/%d/read", notif.NotificationID), nil)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
