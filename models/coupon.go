// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon redemptions are not stored as a counter. They are derived by
// counting the subscriptions that reference the coupon.
type Coupon struct {
	ID              uint   `gorm:"primaryKey"`
	Code            string `gorm:"size:64;not null;uniqueIndex"`
	DiscountPercent uint   `gorm:"not null;default:0"`
	ExpiresAt       *time.Time
	MaxRedemptions  *int `gorm:"default:null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &Coupon{})
}
