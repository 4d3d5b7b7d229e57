// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"testing"
	"time"

	"equilog-server/models"
)

func TestMonthStart(t *testing.T) {
	ref := time.Date(2025, time.March, 17, 14, 30, 12, 0, time.UTC)
	start := MonthStart(ref)
	expected := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, start)
	}
}

func TestCountUsageMonthlyBoundary(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "rider@example.com")

	ref := time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC)
	boundary := MonthStart(ref)

	rows := []models.Document{
		{Title: "before boundary", UserID: user.ID},
		{Title: "on boundary", UserID: user.ID},
		{Title: "after boundary", UserID: user.ID},
	}
	pins := []time.Time{boundary.Add(-time.Second), boundary, boundary.Add(48 * time.Hour)}
	for i := range rows {
		if err := conn.Create(&rows[i]).Error; err != nil {
			t.Fatalf("Failed to create document: %v", err)
		}
		// Create stamps created_at with now; pin each row on the side of
		// the boundary the test needs.
		if err := conn.Model(&models.Document{}).Where("id = ?", rows[i].ID).
			Update("created_at", pins[i]).Error; err != nil {
			t.Fatalf("Failed to pin created_at: %v", err)
		}
	}

	monthly, err := CountUsage(conn, &models.Document{}, user.ID, models.MonthlyScope, ref)
	if err != nil {
		t.Fatalf("CountUsage monthly failed: %v", err)
	}
	if monthly != 2 {
		t.Errorf("Monthly scope should include the boundary row and later, expected 2, got %d", monthly)
	}

	lifetime, err := CountUsage(conn, &models.Document{}, user.ID, models.LifetimeScope, ref)
	if err != nil {
		t.Fatalf("CountUsage lifetime failed: %v", err)
	}
	if lifetime != 3 {
		t.Errorf("Lifetime scope should count all rows, expected 3, got %d", lifetime)
	}
}

func TestCountUsageScopedToUser(t *testing.T) {
	conn := newTestDB(t)
	owner := createTestUser(t, conn, "owner@example.com")
	other := createTestUser(t, conn, "other@example.com")

	for i := 0; i < 3; i++ {
		if err := conn.Create(&models.Horse{Name: "Mine", UserID: owner.ID}).Error; err != nil {
			t.Fatalf("Failed to create horse: %v", err)
		}
	}
	if err := conn.Create(&models.Horse{Name: "Theirs", UserID: other.ID}).Error; err != nil {
		t.Fatalf("Failed to create horse: %v", err)
	}

	count, err := CountUsage(conn, &models.Horse{}, owner.ID, models.LifetimeScope, time.Now())
	if err != nil {
		t.Fatalf("CountUsage failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 horses for owner, got %d", count)
	}
}
