// SPDX-License-Identifier: GPL-3.0-only

package entitlements

import (
	"errors"
	"strings"
	"time"

	"equilog-server/models"

	"gorm.io/gorm"
)

const (
	CouponReasonInvalid   = "Invalid coupon code"
	CouponReasonExpired   = "This coupon has expired"
	CouponReasonExhausted = "This coupon has reached its usage limit"
)

type CouponResult struct {
	Valid           bool
	Reason          string
	Code            string
	DiscountPercent uint
	ExpiresAt       *time.Time
}

// ValidateCoupon checks a coupon code against expiry and redemption count.
// Codes are matched case-insensitively (trimmed, uppercased). The checks
// run in a fixed order and the first failure wins: unknown code, then
// expiry, then redemptions. Redemptions are derived by counting the
// subscriptions that reference the coupon; validation itself never writes.
func ValidateCoupon(conn *gorm.DB, code string, now time.Time) (CouponResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var coupon models.Coupon
	if err := conn.Where("code = ?", normalized).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CouponResult{Reason: CouponReasonInvalid}, nil
		}
		return CouponResult{}, err
	}

	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(now) {
		return CouponResult{Reason: CouponReasonExpired}, nil
	}

	if coupon.MaxRedemptions != nil {
		var redemptions int64
		if err := conn.Model(&models.Subscription{}).
			Where("coupon_id = ?", coupon.ID).
			Count(&redemptions).Error; err != nil {
			return CouponResult{}, err
		}
		if redemptions >= int64(*coupon.MaxRedemptions) {
			return CouponResult{Reason: CouponReasonExhausted}, nil
		}
	}

	return CouponResult{
		Valid:           true,
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
		ExpiresAt:       coupon.ExpiresAt,
	}, nil
}
