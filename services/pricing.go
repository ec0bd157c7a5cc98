package services

import (
	"time"

	"stayhub-backend/config"
)

// Quote is an itemized price for a stay. All amounts are in the canonical
// currency unit; conversion for display is the caller's concern.
type Quote struct {
	Nights     int     `json:"nights"`
	RoomCost   float64 `json:"room_cost"`
	GuestFee   float64 `json:"guest_fee"`
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

// Nights returns the whole-day difference between check-in and check-out,
// clamped to a minimum of 1.
func Nights(checkIn, checkOut time.Time) int {
	ci := checkIn.Truncate(24 * time.Hour)
	co := checkOut.Truncate(24 * time.Hour)
	n := int(co.Sub(ci).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// ComputeQuote prices a stay:
//
//	roomCost = nightlyPrice × nights
//	guestFee = max(0, guests−baseOccupancy) × nightlyGuestFee × nights
//	tax      = (roomCost + guestFee) × taxRate
//	total    = subtotal + tax + serviceFee
func ComputeQuote(cfg config.PricingConfig, nightlyPrice float64, nights, guests int) Quote {
	if nights < 1 {
		nights = 1
	}

	roomCost := nightlyPrice * float64(nights)

	extraGuests := guests - cfg.BaseOccupancy
	if extraGuests < 0 {
		extraGuests = 0
	}
	guestFee := float64(extraGuests) * cfg.NightlyGuestFee * float64(nights)

	subtotal := roomCost + guestFee
	tax := subtotal * cfg.TaxRate

	return Quote{
		Nights:     nights,
		RoomCost:   roomCost,
		GuestFee:   guestFee,
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: cfg.ServiceFee,
		Total:      subtotal + tax + cfg.ServiceFee,
	}
}

// LateCheckoutFee charges the flat per-day rate for each full day `now` is
// past the booked check-out date. Zero when checkout is on time.
func LateCheckoutFee(cfg config.PricingConfig, checkOutDate, now time.Time) (int, float64) {
	due := checkOutDate.Truncate(24 * time.Hour)
	cur := now.Truncate(24 * time.Hour)
	days := int(cur.Sub(due).Hours() / 24)
	if days <= 0 {
		return 0, 0
	}
	return days, float64(days) * cfg.LateCheckoutFee
}
