// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"errors"

	"equilog-server/models"

	"gorm.io/gorm"
)

// ErrMultipleActiveSubscriptions reports a data-integrity violation: a
// partial unique index should keep at most one active subscription per
// user, so finding more than one is never resolved by picking a row
// arbitrarily.
var ErrMultipleActiveSubscriptions = errors.New("user has more than one active subscription")

// NoPlanName is the plan name reported when a user has no active
// subscription. Absence of a subscription is zero entitlement, not an
// error.
const NoPlanName = "No plan subscribed"

// ResolveActive fetches the user's active subscription with its plan and
// coupon preloaded. It returns (nil, nil) when the user has no active
// subscription.
func ResolveActive(conn *gorm.DB, userID uint) (*models.Subscription, error) {
	var subscriptions []models.Subscription
	err := conn.Preload("Plan").Preload("Coupon").
		Where("user_id = ? AND is_active = ?", userID, true).
		Limit(2).
		Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	switch len(subscriptions) {
	case 0:
		return nil, nil
	case 1:
		return &subscriptions[0], nil
	default:
		return nil, ErrMultipleActiveSubscriptions
	}
}
