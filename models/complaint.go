package models

import (
	"gorm.io/gorm"
)

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

type Complaint struct {
	gorm.Model

	CustomerID uint  `gorm:"index;column:customer_id" json:"customer_id"`
	BookingID  *uint `gorm:"index;column:booking_id" json:"booking_id,omitempty"`

	Subject string          `gorm:"size:255" json:"subject"`
	Body    string          `gorm:"type:text" json:"body"`
	Status  ComplaintStatus `gorm:"type:varchar(32);default:open;index" json:"status"`

	Customer User `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}
