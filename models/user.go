// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

type User struct {
	ID        uint    `gorm:"primaryKey"`
	AccountID string  `gorm:"size:64;not null;uniqueIndex"`
	Email     string  `gorm:"not null;uniqueIndex"`
	Password  string  `gorm:"not null"`
	FullName  *string `gorm:"default:null"`
	StableName *string `gorm:"default:null"`
	Discipline *string `gorm:"size:50;default:null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &User{})
}
