package handlers

import (
	"net/http"
	"testing"

	"equilog-server/db"
	"equilog-server/models"
)

func createTestDocuments(t *testing.T, user models.User, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		document := models.Document{
			Title:  "Session notes",
			Kind:   models.TrainingDocument,
			UserID: user.ID,
		}
		if err := db.Conn.Create(&document).Error; err != nil {
			t.Fatalf("Failed to create test document: %v", err)
		}
	}
}

func TestCheckDocumentLimitMonthlyExhausted(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "rider@example.com")
	plan := createTestPlan(t, models.FreePlan, 2, models.MonthlyScope, 2, 1)
	subscribeUser(t, user, plan, nil)
	createTestDocuments(t, user, 2)

	c, rec := newAuthContext(t, http.MethodGet, "/v1/entitlements/documents", "", user)
	if err := CheckDocumentLimitHandler(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	payload := decodeBody(t, rec)
	if payload["canUploadDocument"] != false {
		t.Errorf("Expected canUploadDocument false, got %v", payload["canUploadDocument"])
	}
	if payload["currentDocuments"] != float64(2) {
		t.Errorf("Expected currentDocuments 2, got %v", payload["currentDocuments"])
	}
	if payload["remainingDocuments"] != float64(0) {
		t.Errorf("Expected remainingDocuments 0, got %v", payload["remainingDocuments"])
	}
	if payload["planName"] != "FREE" {
		t.Errorf("Expected planName FREE, got %v", payload["planName"])
	}
	if payload["limitType"] != "monthly" {
		t.Errorf("Expected limitType monthly, got %v", payload["limitType"])
	}
}

func TestCheckDocumentLimitUnlimitedPlan(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "pro@example.com")
	plan := createTestPlan(t, models.ProPlan, models.UnlimitedLimit, models.LifetimeScope, models.UnlimitedLimit, models.UnlimitedLimit)
	subscribeUser(t, user, plan, nil)
	createTestDocuments(t, user, 40)

	c, rec := newAuthContext(t, http.MethodGet, "/v1/entitlements/documents", "", user)
	if err := CheckDocumentLimitHandler(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	payload := decodeBody(t, rec)
	if payload["canUploadDocument"] != true {
		t.Errorf("Expected canUploadDocument true, got %v", payload["canUploadDocument"])
	}
	if payload["maxDocuments"] != "unlimited" {
		t.Errorf("Expected maxDocuments \"unlimited\", got %v", payload["maxDocuments"])
	}
	if payload["remainingDocuments"] != "unlimited" {
		t.Errorf("Expected remainingDocuments \"unlimited\", got %v", payload["remainingDocuments"])
	}
}

func TestCheckDocumentLimitNoSubscription(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "nosub@example.com")

	c, rec := newAuthContext(t, http.MethodGet, "/v1/entitlements/documents", "", user)
	if err := CheckDocumentLimitHandler(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	payload := decodeBody(t, rec)
	if payload["canUploadDocument"] != false {
		t.Errorf("Expected canUploadDocument false, got %v", payload["canUploadDocument"])
	}
	if payload["planName"] != "No plan subscribed" {
		t.Errorf("Expected planName \"No plan subscribed\", got %v", payload["planName"])
	}
	if payload["maxDocuments"] != float64(0) {
		t.Errorf("Expected maxDocuments 0, got %v", payload["maxDocuments"])
	}
}

func TestCreateDocumentOverQuota(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "full@example.com")
	plan := createTestPlan(t, models.FreePlan, 1, models.LifetimeScope, 2, 1)
	subscribeUser(t, user, plan, nil)
	createTestDocuments(t, user, 1)

	body := `{"title": "One too many"}`
	c, rec := newAuthContext(t, http.MethodPost, "/v1/documents", body, user)
	if err := CreateDocumentHandler(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for over-quota request, got %d", rec.Code)
	}
	payload := decodeBody(t, rec)
	if payload["canUploadDocument"] != false {
		t.Errorf("Expected canUploadDocument false, got %v", payload["canUploadDocument"])
	}

	var count int64
	if err := db.Conn.Model(&models.Document{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count documents: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected no new document to be created, found %d", count)
	}
}

func TestCreateDocumentWithinQuota(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ok@example.com")
	plan := createTestPlan(t, models.PlusPlan, 5, models.MonthlyScope, 10, 20)
	subscribeUser(t, user, plan, nil)

	body := `{"title": "Flatwork session", "kind": "VIDEO"}`
	c, rec := newAuthContext(t, http.MethodPost, "/v1/documents", body, user)
	if err := CreateDocumentHandler(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}
	payload := decodeBody(t, rec)
	if payload["title"] != "Flatwork session" {
		t.Errorf("Expected title to round-trip, got %v", payload["title"])
	}
	if payload["remainingDocuments"] != float64(4) {
		t.Errorf("Expected remainingDocuments 4, got %v", payload["remainingDocuments"])
	}

	var document models.Document
	if err := db.Conn.Where("user_id = ?", user.ID).First(&document).Error; err != nil {
		t.Fatalf("Expected document to be created: %v", err)
	}
	if document.Kind != models.TrainingVideo {
		t.Errorf("Expected kind VIDEO, got %s", document.Kind)
	}
}

func TestCreateDocumentMissingTitle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "notitle@example.com")
	plan := createTestPlan(t, models.FreePlan, 5, models.MonthlyScope, 2, 1)
	subscribeUser(t, user, plan, nil)

	c, _ := newAuthContext(t, http.MethodPost, "/v1/documents", `{}`, user)
	err := CreateDocumentHandler(c)
	if err == nil {
		t.Fatal("Expected error for missing title")
	}
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", code)
	}
}
