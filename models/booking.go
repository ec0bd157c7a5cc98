package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentState string

const (
	PaymentStatePending  PaymentState = "pending"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateFailed   PaymentState = "failed"
	PaymentStateRefunded PaymentState = "refunded"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CustomerID uint `gorm:"index;column:customer_id" json:"customer_id"`
	RoomID     uint `gorm:"index;column:room_id" json:"room_id"`

	// Opaque per-booking token, derived at creation. Not a secret.
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code,omitempty"`

	Status        BookingStatus `gorm:"column:status;type:varchar(32);default:pending;index" json:"status"`
	PaymentStatus PaymentState  `gorm:"column:payment_status;type:varchar(32);default:pending" json:"payment_status"`

	// Date range is immutable after creation.
	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`

	Nights         int     `gorm:"column:nights" json:"nights"`
	NumberOfGuests int     `gorm:"column:number_of_guests" json:"number_of_guests"`
	TotalPrice     float64 `gorm:"column:total_price" json:"total_price"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`

	Room     Room      `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Customer User      `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}
