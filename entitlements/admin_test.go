// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"testing"

	"equilog-server/models"
)

func TestIsPrivilegedIdentity(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", "ops@equilog.app")

	if !IsPrivilegedIdentity("ops@equilog.app") {
		t.Error("Configured address should be privileged")
	}
	if !IsPrivilegedIdentity("OPS@EQUILOG.APP") {
		t.Error("Privileged check should be case-insensitive")
	}
	if IsPrivilegedIdentity("rider@example.com") {
		t.Error("Other addresses should not be privileged")
	}
}

func TestIsPrivilegedIdentityUnconfigured(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", "")

	if IsPrivilegedIdentity("") {
		t.Error("Empty configuration must never match, not even an empty email")
	}
}

func TestCanManageProfileSelf(t *testing.T) {
	conn := newTestDB(t)
	user := createTestUser(t, conn, "self@example.com")

	ok, err := CanManageProfile(conn, &user, user.ID)
	if err != nil {
		t.Fatalf("CanManageProfile failed: %v", err)
	}
	if !ok {
		t.Error("Users should manage their own profile")
	}
}

func TestCanManageProfileAdminRole(t *testing.T) {
	conn := newTestDB(t)
	admin := createTestUser(t, conn, "admin@example.com")
	target := createTestUser(t, conn, "target@example.com")

	if err := conn.Create(&models.UserRole{UserID: admin.ID, Role: models.AdminRole}).Error; err != nil {
		t.Fatalf("Failed to create role: %v", err)
	}

	ok, err := CanManageProfile(conn, &admin, target.ID)
	if err != nil {
		t.Fatalf("CanManageProfile failed: %v", err)
	}
	if !ok {
		t.Error("Admin role should authorize managing other profiles")
	}
}

func TestCanManageProfilePrivilegedIdentity(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", "ops@equilog.app")
	conn := newTestDB(t)
	ops := createTestUser(t, conn, "ops@equilog.app")
	target := createTestUser(t, conn, "someone@example.com")

	ok, err := CanManageProfile(conn, &ops, target.ID)
	if err != nil {
		t.Fatalf("CanManageProfile failed: %v", err)
	}
	if !ok {
		t.Error("Privileged identity should authorize managing other profiles")
	}
}

func TestCanManageProfileDenied(t *testing.T) {
	t.Setenv("SUPERUSER_EMAIL", "ops@equilog.app")
	conn := newTestDB(t)
	requester := createTestUser(t, conn, "nobody@example.com")
	target := createTestUser(t, conn, "victim@example.com")

	ok, err := CanManageProfile(conn, &requester, target.ID)
	if err != nil {
		t.Fatalf("CanManageProfile failed: %v", err)
	}
	if ok {
		t.Error("Unrelated non-admin should be denied")
	}
}
