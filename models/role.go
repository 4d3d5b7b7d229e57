// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

type RoleName string

const (
	AdminRole RoleName = "ADMIN"
)

// UserRole maps a user to a named role. Admin checks look this table up
// instead of relying on a flag baked into the user row.
type UserRole struct {
	ID        uint     `gorm:"primaryKey"`
	Role      RoleName `gorm:"size:50;not null;index:idx_user_roles_user_role,unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	UserID    uint           `gorm:"not null;index:idx_user_roles_user_role,unique"`
	User      User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func init() {
	AllModels = append(AllModels, &UserRole{})
}
