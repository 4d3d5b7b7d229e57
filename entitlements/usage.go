// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"time"

	"equilog-server/models"

	"gorm.io/gorm"
)

// MonthStart returns the first instant of the month containing ref, in
// ref's location.
func MonthStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// CountUsage counts rows of the given model owned by the user. Monthly
// scope only counts rows created on or after the start of the month
// containing ref; the reference time is explicit so callers and tests
// control the period boundary. The count is a point-in-time snapshot with
// no isolation against concurrent inserts.
func CountUsage(conn *gorm.DB, model any, userID uint, scope models.LimitScope, ref time.Time) (int64, error) {
	query := conn.Model(model).Where("user_id = ?", userID)
	if scope == models.MonthlyScope {
		query = query.Where("created_at >= ?", MonthStart(ref))
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
