// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"errors"
	"testing"
	"time"

	"equilog-server/models"

	"gorm.io/gorm"
)

func createTestPlan(t *testing.T, conn *gorm.DB, name models.PlanName, maxDocuments, maxHorses int) models.Plan {
	t.Helper()
	plan := models.Plan{
		Name:               name,
		MaxDocuments:       maxDocuments,
		DocumentLimitScope: models.MonthlyScope,
		MaxHorses:          maxHorses,
	}
	if err := conn.Create(&plan).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}
	return plan
}

func TestResolveActiveNoSubscription(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "nosub@example.com")

	subscription, err := ResolveActive(conn, user.ID)
	if err != nil {
		t.Fatalf("ResolveActive failed: %v", err)
	}
	if subscription != nil {
		t.Error("Expected nil subscription for a user with no rows")
	}
}

func TestResolveActiveIgnoresInactive(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "inactive@example.com")
	plan := createTestPlan(t, conn, models.FreePlan, 5, 2)

	inactive := models.Subscription{UserID: user.ID, PlanID: plan.ID, IsActive: false, StartedAt: time.Now()}
	if err := conn.Create(&inactive).Error; err != nil {
		t.Fatalf("Failed to create subscription: %v", err)
	}

	subscription, err := ResolveActive(conn, user.ID)
	if err != nil {
		t.Fatalf("ResolveActive failed: %v", err)
	}
	if subscription != nil {
		t.Error("Inactive subscriptions must not resolve")
	}
}

func TestResolveActivePreloadsPlan(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "sub@example.com")
	plan := createTestPlan(t, conn, models.PlusPlan, 50, 10)

	active := models.Subscription{UserID: user.ID, PlanID: plan.ID, IsActive: true, StartedAt: time.Now()}
	if err := conn.Create(&active).Error; err != nil {
		t.Fatalf("Failed to create subscription: %v", err)
	}

	subscription, err := ResolveActive(conn, user.ID)
	if err != nil {
		t.Fatalf("ResolveActive failed: %v", err)
	}
	if subscription == nil {
		t.Fatal("Expected an active subscription")
	}
	if subscription.Plan.Name != models.PlusPlan {
		t.Errorf("Expected preloaded PLUS plan, got %q", subscription.Plan.Name)
	}
	if subscription.Plan.MaxDocuments != 50 {
		t.Errorf("Expected MaxDocuments 50, got %d", subscription.Plan.MaxDocuments)
	}
}

func TestResolveActiveMultipleRowsIsIntegrityError(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "dup@example.com")
	plan := createTestPlan(t, conn, models.FreePlan, 5, 2)

	for i := 0; i < 2; i++ {
		subscription := models.Subscription{UserID: user.ID, PlanID: plan.ID, IsActive: true, StartedAt: time.Now()}
		if err := conn.Create(&subscription).Error; err != nil {
			t.Fatalf("Failed to create subscription: %v", err)
		}
	}

	_, err := ResolveActive(conn, user.ID)
	if !errors.Is(err, ErrMultipleActiveSubscriptions) {
		t.Errorf("Expected ErrMultipleActiveSubscriptions, got %v", err)
	}
}
