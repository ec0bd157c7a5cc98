package models

import (
	"time"

	"gorm.io/gorm"
)

type VerificationCode struct {
	gorm.Model

	UserID    uint       `gorm:"index;column:user_id" json:"user_id"`
	Code      string     `gorm:"column:code;size:16;index" json:"-"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"used_at,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
