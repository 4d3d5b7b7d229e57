// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalysisStatus string
type AnalysisDiscipline string

const (
	AnalysisPending   AnalysisStatus = "PENDING"
	AnalysisQueued    AnalysisStatus = "QUEUED"
	AnalysisFailed    AnalysisStatus = "FAILED"
	AnalysisCompleted AnalysisStatus = "COMPLETED"
)

const (
	Dressage AnalysisDiscipline = "DRESSAGE"
	Jumping  AnalysisDiscipline = "JUMPING"
)

type Analysis struct {
	ID         uint               `gorm:"primaryKey"`
	AID        uuid.UUID          `gorm:"column:aid;type:uuid;not null"`
	Discipline AnalysisDiscipline `gorm:"size:20;not null;default:'DRESSAGE'"`
	Status     AnalysisStatus     `gorm:"size:20;not null;default:'PENDING'"`
	Notes      *string            `gorm:"type:text;default:null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	UserID     uint           `gorm:"index"`
	User       User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	HorseID    *uint
	Horse      *Horse `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	DocumentID *uint
	Document   *Document `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (analysis *Analysis) BeforeCreate(tx *gorm.DB) (err error) {
	if analysis.AID == uuid.Nil {
		analysis.AID = uuid.New()
	}
	return
}

func init() {
	AllModels = append(AllModels, &Analysis{})
}
