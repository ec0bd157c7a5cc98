package models

import (
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	gorm.Model

	// Nullable so an insert without a valid FK doesn't try to write 0.
	RoomTypeID *uint `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`

	Status RoomStatus `json:"status" gorm:"type:varchar(32);default:available;index"`

	// Current nightly price in the canonical currency unit.
	Price        float64 `json:"price"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}
