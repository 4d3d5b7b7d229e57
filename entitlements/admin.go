// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"strings"

	"equilog-server/commons"
	"equilog-server/models"

	"gorm.io/gorm"
)

// IsPrivilegedIdentity is the single trust-root check. The privileged
// address comes from configuration; handlers must never compare against
// their own literal.
func IsPrivilegedIdentity(email string) bool {
	privileged := commons.GetEnv("SUPERUSER_EMAIL")
	if privileged == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(privileged))
}

// HasAdminRole reports whether the user has an ADMIN row in the role
// mapping table.
func HasAdminRole(conn *gorm.DB, userID uint) (bool, error) {
	var count int64
	err := conn.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, models.AdminRole).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CanManageProfile authorizes a profile update: users manage themselves,
// admins and the privileged identity manage anyone.
func CanManageProfile(conn *gorm.DB, requester *models.User, targetUserID uint) (bool, error) {
	if requester.ID == targetUserID {
		return true, nil
	}
	if IsPrivilegedIdentity(requester.Email) {
		return true, nil
	}
	return HasAdminRole(conn, requester.ID)
}
