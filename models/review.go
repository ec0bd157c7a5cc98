package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model

	CustomerID uint   `gorm:"index;column:customer_id" json:"customer_id"`
	RoomID     uint   `gorm:"index;column:room_id" json:"room_id"`
	Rating     int    `gorm:"column:rating" json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`

	Customer User `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Room     Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
