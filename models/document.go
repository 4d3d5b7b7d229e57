// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

type DocumentKind string

const (
	TrainingDocument DocumentKind = "DOCUMENT"
	TrainingVideo    DocumentKind = "VIDEO"
)

type Document struct {
	ID          uint         `gorm:"primaryKey"`
	Title       string       `gorm:"size:255;not null"`
	Kind        DocumentKind `gorm:"size:20;not null;default:'DOCUMENT'"`
	StoragePath *string      `gorm:"size:512;default:null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	UserID      uint           `gorm:"index"`
	User        User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	HorseID     *uint
	Horse       *Horse `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func init() {
	AllModels = append(AllModels, &Document{})
}
