package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"equilog-server/db"
	"equilog-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	previous := db.Conn
	db.Conn = conn
	t.Cleanup(func() { db.Conn = previous })
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{
		AccountID: "acct_" + email,
		Email:     email,
		Password:  "irrelevant",
	}
	if err := db.Conn.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestPlan(t *testing.T, name models.PlanName, maxDocuments int, scope models.LimitScope, maxHorses, maxAnalyses int) models.Plan {
	t.Helper()
	plan := models.Plan{
		Name:                name,
		MaxDocuments:        maxDocuments,
		DocumentLimitScope:  scope,
		MaxHorses:           maxHorses,
		MaxAnalysesPerMonth: maxAnalyses,
	}
	if err := db.Conn.Create(&plan).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}
	return plan
}

func subscribeUser(t *testing.T, user models.User, plan models.Plan, couponID *uint) models.Subscription {
	t.Helper()
	subscription := models.Subscription{
		UserID:    user.ID,
		PlanID:    plan.ID,
		IsActive:  true,
		StartedAt: time.Now(),
		CouponID:  couponID,
	}
	if err := db.Conn.Create(&subscription).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}
	return subscription
}

var sessionCounter int

// newAuthContext builds an echo context carrying the session the auth
// middleware would have attached.
func newAuthContext(t *testing.T, method, path, body string, user models.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	sessionCounter++
	expiresAt := time.Now().Add(time.Hour)
	session := models.Session{
		Token:     fmt.Sprintf("test_token_%d_%s", sessionCounter, user.Email),
		UserID:    user.ID,
		ExpiresAt: &expiresAt,
	}
	if err := db.Conn.Create(&session).Error; err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	c, rec := newContext(method, path, body)
	c.Set("session", session)
	return c, rec
}

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return payload
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("Expected *echo.HTTPError, got %T: %v", err, err)
	}
	return httpErr.Code
}
