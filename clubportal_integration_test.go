package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nu-studentlife/club-portal/models"
	"github.com/nu-studentlife/club-portal/router"
	"github.com/nu-studentlife/club-portal/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndFlow drives the main workflow through the real router:
// 1. hash migration of legacy plaintext accounts
// 2. leader login
// 3. request submission
// 4. club listing
// 5. admin listing + review
// 6. submitter notification, logout
func TestEndToEndFlow(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	// 1. Seed accounts store plaintext passwords; migrate them.
	w := doRequest(t, r, "GET", "/init-hash", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// 2. Leader login with the migrated credentials.
	leaderLogin := doRequest(t, r, "POST", "/api/login", map[string]string{
		"identifier": "omarsamir@nu.edu.eg",
		"password":   "rpm123",
	}, "")
	assert.Equal(t, http.StatusOK, leaderLogin.Code)

	var leader map[string]interface{}
	assert.NoError(t, json.Unmarshal(leaderLogin.Body.Bytes(), &leader))
	assert.Equal(t, "CLUB_LEADER", leader["role"])
	leaderID := uint(leader["user_id"].(float64))
	clubID := uint(leader["club_id"].(float64))
	leaderToken := leader["token"].(string)

	// 3. Submit a request; status must come back PENDING.
	created := doRequest(t, r, "POST", "/api/requests", map[string]interface{}{
		"user_id":      leaderID,
		"club_id":      clubID,
		"title":        "Spring Robotics Show",
		"request_type": "EVENT",
		"event_date":   "2025-03-10",
		"start_time":   "09:00",
		"end_time":     "10:30",
		"location":     "Main Hall",
	}, "")
	assert.Equal(t, http.StatusCreated, created.Code)

	var createdResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdResp))
	requestID := uint(createdResp["request_id"].(float64))

	// 4. The club listing shows the request with the date intact.
	listing := doRequest(t, r, "GET", fmt.Sprintf("/api/clubs/%d/requests", clubID), nil, "")
	assert.Equal(t, http.StatusOK, listing.Code)

	var summaries []map[string]interface{}
	assert.NoError(t, json.Unmarshal(listing.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 1)
	assert.Equal(t, "2025-03-10", summaries[0]["event_date"])
	assert.Equal(t, "PENDING", summaries[0]["status"])

	// 5. Admin login, cross-club listing, review.
	adminLogin := doRequest(t, r, "POST", "/api/login", map[string]string{
		"identifier": "janayaman@nu.edu.eg",
		"password":   "adminSU",
	}, "")
	assert.Equal(t, http.StatusOK, adminLogin.Code)

	var admin map[string]interface{}
	assert.NoError(t, json.Unmarshal(adminLogin.Body.Bytes(), &admin))
	adminID := uint(admin["user_id"].(float64))
	adminToken := admin["token"].(string)

	adminListing := doRequest(t, r, "GET",
		fmt.Sprintf("/api/admin/requests?user_id=%d", adminID), nil, "")
	assert.Equal(t, http.StatusOK, adminListing.Code)

	var adminSummaries []map[string]interface{}
	assert.NoError(t, json.Unmarshal(adminListing.Body.Bytes(), &adminSummaries))
	assert.Len(t, adminSummaries, 1)
	assert.Equal(t, "Robotics Club", adminSummaries[0]["club_name"])

	review := doRequest(t, r, "PATCH",
		fmt.Sprintf("/api/admin/requests/%d/status", requestID),
		map[string]string{"status": "APPROVED"}, adminToken)
	assert.Equal(t, http.StatusOK, review.Code)

	var stored models.Request
	assert.NoError(t, db.First(&stored, requestID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Equal(t, adminID, *stored.ReviewedBy)

	// 6. The submitter sees the outcome, then logs out.
	notifs := doRequest(t, r, "GET", "/api/notifications", nil, leaderToken)
	assert.Equal(t, http.StatusOK, notifs.Code)
	assert.Contains(t, notifs.Body.String(), "APPROVED")

	logout := doRequest(t, r, "POST", "/api/auth/logout", nil, leaderToken)
	assert.Equal(t, http.StatusOK, logout.Code)

	// The blacklisted token no longer works.
	me := doRequest(t, r, "GET", "/api/auth/me", nil, leaderToken)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	// The router migrates lazily, but seeding needs the tables now.
	err = db.AutoMigrate(
		&models.Club{},
		&models.User{},
		&models.Room{},
		&models.Request{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	club := models.Club{ClubName: "Robotics Club", Budget: 5000, TotalMembers: 30}
	if err := db.Create(&club).Error; err != nil {
		t.Fatalf("failed to seed club: %v", err)
	}

	// Plaintext rows, as they were before the hash migration ran.
	users := []models.User{
		{
			Fullname:     "Omar Samir",
			Email:        "omarsamir@nu.edu.eg",
			PasswordHash: "rpm123",
			Role:         models.RoleClubLeader,
			ClubID:       &club.ClubID,
		},
		{
			Fullname:     "Jana Yaman",
			Email:        "janayaman@nu.edu.eg",
			PasswordHash: "adminSU",
			Role:         models.RoleSUAdmin,
		},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}
	return db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
