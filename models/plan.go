// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

type PlanName string

const (
	FreePlan PlanName = "FREE"
	PlusPlan PlanName = "PLUS"
	ProPlan  PlanName = "PRO"
)

type LimitScope string

const (
	LifetimeScope LimitScope = "lifetime"
	MonthlyScope  LimitScope = "monthly"
)

// UnlimitedLimit is the sentinel for "no limit". Every comparison against a
// plan limit must special-case it before doing arithmetic.
const UnlimitedLimit = -1

type Plan struct {
	ID                  uint       `gorm:"primaryKey"`
	Name                PlanName   `gorm:"size:255;not null;default:'FREE';uniqueIndex"`
	PriceMonthly        uint       `gorm:"not null;default:0"`
	PriceAnnual         uint       `gorm:"not null;default:0"`
	Currency            string     `gorm:"size:10;not null;default:'EUR'"`
	MaxDocuments        int        `gorm:"not null;default:0"`
	DocumentLimitScope  LimitScope `gorm:"size:20;not null;default:'lifetime'"`
	MaxHorses           int        `gorm:"not null;default:0"`
	MaxAnalysesPerMonth int        `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &Plan{})
}
