package services

import (
	"testing"
	"time"

	"stayhub-backend/config"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuoteFormula(t *testing.T) {
	cfg := config.DefaultPricing()

	// 100,000/night, 3 nights, 3 guests (1 over base occupancy of 2):
	// roomCost 300,000; guestFee 45,000; subtotal 345,000; tax 34,500;
	// total 399,500.
	q := ComputeQuote(cfg, 100000, 3, 3)

	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 300000.0, q.RoomCost)
	assert.Equal(t, 45000.0, q.GuestFee)
	assert.Equal(t, 345000.0, q.Subtotal)
	assert.Equal(t, 34500.0, q.Tax)
	assert.Equal(t, 20000.0, q.ServiceFee)
	assert.Equal(t, 399500.0, q.Total)
}

func TestComputeQuoteNoExtraGuests(t *testing.T) {
	cfg := config.DefaultPricing()

	q := ComputeQuote(cfg, 80000, 2, 2)

	assert.Equal(t, 0.0, q.GuestFee)
	assert.Equal(t, 160000.0, q.RoomCost)
	assert.Equal(t, 160000.0*1.1+20000, q.Total)
}

func TestComputeQuoteClampsNights(t *testing.T) {
	cfg := config.DefaultPricing()

	q := ComputeQuote(cfg, 100000, 0, 1)
	assert.Equal(t, 1, q.Nights)
	assert.Equal(t, 100000.0, q.RoomCost)
}

func TestNights(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %s: %v", s, err)
		}
		return d
	}

	assert.Equal(t, 3, Nights(day("2026-03-01"), day("2026-03-04")))
	assert.Equal(t, 1, Nights(day("2026-03-01"), day("2026-03-02")))
	// same-day checkout clamps to one night
	assert.Equal(t, 1, Nights(day("2026-03-01"), day("2026-03-01")))
}

func TestLateCheckoutFee(t *testing.T) {
	cfg := config.DefaultPricing()
	now := time.Now().UTC()

	days, fee := LateCheckoutFee(cfg, now.AddDate(0, 0, 1), now)
	assert.Equal(t, 0, days)
	assert.Equal(t, 0.0, fee)

	days, fee = LateCheckoutFee(cfg, now, now)
	assert.Equal(t, 0, days)
	assert.Equal(t, 0.0, fee)

	days, fee = LateCheckoutFee(cfg, now.AddDate(0, 0, -2), now)
	assert.Equal(t, 2, days)
	assert.Equal(t, 2*cfg.LateCheckoutFee, fee)
}
