package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ActorID  uint   `gorm:"index;column:actor_id" json:"actor_id"`
	Action   string `gorm:"size:64;index" json:"action"`
	Entity   string `gorm:"size:64" json:"entity"`
	EntityID uint   `gorm:"column:entity_id" json:"entity_id"`
	Detail   string `gorm:"type:text" json:"detail,omitempty"`
}
