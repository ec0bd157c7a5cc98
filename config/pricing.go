package config

import (
	"strconv"
	"strings"
)

// PricingConfig carries every fee constant the booking price formula uses.
// Values are in the canonical currency unit except TaxRate (fraction).
type PricingConfig struct {
	NightlyGuestFee float64
	TaxRate         float64
	ServiceFee      float64
	BaseOccupancy   int

	// Flat charge per full day past the booked check-out date.
	LateCheckoutFee float64
}

func DefaultPricing() PricingConfig {
	return PricingConfig{
		NightlyGuestFee: 15000,
		TaxRate:         0.10,
		ServiceFee:      20000,
		BaseOccupancy:   2,
		LateCheckoutFee: 50000,
	}
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(EnvOrDefault(key, ""))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(EnvOrDefault(key, ""))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// LoadPricing reads the fee constants from the environment, falling back to
// the defaults above.
func LoadPricing() PricingConfig {
	def := DefaultPricing()
	return PricingConfig{
		NightlyGuestFee: envFloat("PRICING_NIGHTLY_GUEST_FEE", def.NightlyGuestFee),
		TaxRate:         envFloat("PRICING_TAX_RATE", def.TaxRate),
		ServiceFee:      envFloat("PRICING_SERVICE_FEE", def.ServiceFee),
		BaseOccupancy:   envInt("PRICING_BASE_OCCUPANCY", def.BaseOccupancy),
		LateCheckoutFee: envFloat("PRICING_LATE_CHECKOUT_FEE", def.LateCheckoutFee),
	}
}
