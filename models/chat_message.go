package models

import (
	"gorm.io/gorm"
)

type ChatMessage struct {
	gorm.Model

	SenderID uint `gorm:"index;column:sender_id" json:"sender_id"`

	// 0 means the front-desk pool; any receptionist can pick it up.
	RecipientID uint `gorm:"index;column:recipient_id" json:"recipient_id"`

	Body string `gorm:"type:text" json:"body"`
	Read bool   `gorm:"column:read_flag;default:false" json:"read"`

	Sender User `gorm:"foreignKey:SenderID;references:ID" json:"sender,omitempty"`
}
