package models

import (
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

const (
	PaymentMethodCard     = "card"
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodLateFee  = "late_fee"
	PaymentMethodRefund   = "refund"
)

type Payment struct {
	gorm.Model

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`

	// Amount in the canonical currency unit. Negative for refunds.
	Amount float64       `gorm:"column:amount" json:"amount"`
	Method string        `gorm:"column:method;size:32" json:"method"`
	Status PaymentStatus `gorm:"column:status;type:varchar(32);default:pending" json:"status"`

	TransactionRef string `gorm:"column:transaction_ref;size:64" json:"transaction_ref,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
