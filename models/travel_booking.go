package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TravelBooking struct {
	gorm.Model

	CustomerID  uint   `gorm:"index;column:customer_id" json:"customer_id"`
	Destination string `gorm:"size:255" json:"destination"`

	StartDate time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date" json:"end_date"`

	Seats      int           `gorm:"column:seats" json:"seats"`
	TotalPrice float64       `gorm:"column:total_price" json:"total_price"`
	Status     BookingStatus `gorm:"type:varchar(32);default:confirmed;index" json:"status"`

	// Free-form itinerary draft supplied by the customer.
	Itinerary datatypes.JSON `gorm:"column:itinerary" json:"itinerary,omitempty"`

	Customer User `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}
