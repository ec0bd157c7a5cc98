package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string  `json:"typeName"`
	Description string  `json:"description"`
	MaxGuests   int     `json:"maxGuests" gorm:"column:max_guests"`
	BasePrice   float64 `json:"basePrice" gorm:"column:base_price"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
