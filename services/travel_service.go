package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayhub-backend/config"
	"stayhub-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TravelService struct {
	DB      *gorm.DB
	Pricing config.PricingConfig
}

func NewTravelService(db *gorm.DB, pricing config.PricingConfig) *TravelService {
	return &TravelService{DB: db, Pricing: pricing}
}

type CreateTravelInput struct {
	CustomerID   uint
	Destination  string
	StartDate    time.Time
	EndDate      time.Time
	Seats        int
	PricePerSeat float64
	Itinerary    map[string]interface{}
}

// Create books a travel package for a customer. Same tax/service constants
// as room pricing so totals stay consistent across the two booking kinds.
func (s *TravelService) Create(ctx context.Context, in CreateTravelInput) (*models.TravelBooking, error) {
	ve := newValidationError()
	if strings.TrimSpace(in.Destination) == "" {
		ve.add("destination", "destination is required")
	}
	if in.Seats < 1 {
		ve.add("seats", "at least one seat is required")
	}
	if in.PricePerSeat <= 0 {
		ve.add("price_per_seat", "price per seat must be positive")
	}
	if !in.EndDate.After(in.StartDate) {
		ve.add("end_date", "end date must be after start date")
	}
	if ve.hasErrors() {
		return nil, ve
	}

	var customer models.User
	if err := s.DB.WithContext(ctx).First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "customer"}
		}
		return nil, err
	}
	if !customer.Active {
		ve := newValidationError()
		ve.add("customer_id", "account is not active")
		return nil, ve
	}

	subtotal := in.PricePerSeat * float64(in.Seats)
	total := subtotal + subtotal*s.Pricing.TaxRate + s.Pricing.ServiceFee

	var itinerary datatypes.JSON
	if in.Itinerary != nil {
		raw, err := json.Marshal(in.Itinerary)
		if err == nil {
			itinerary = datatypes.JSON(raw)
		}
	}

	travel := models.TravelBooking{
		CustomerID:  in.CustomerID,
		Destination: strings.TrimSpace(in.Destination),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Seats:       in.Seats,
		TotalPrice:  total,
		Status:      models.BookingConfirmed,
		Itinerary:   itinerary,
	}
	if err := s.DB.WithContext(ctx).Create(&travel).Error; err != nil {
		return nil, fmt.Errorf("failed to create travel booking: %w", err)
	}
	return &travel, nil
}

func (s *TravelService) ListByCustomer(ctx context.Context, customerID uint) ([]models.TravelBooking, error) {
	var list []models.TravelBooking
	if err := s.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list travel bookings: %w", err)
	}
	return list, nil
}

func (s *TravelService) Cancel(ctx context.Context, id, customerID uint) error {
	var travel models.TravelBooking
	if err := s.DB.WithContext(ctx).First(&travel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "travel booking"}
		}
		return err
	}
	if travel.CustomerID != customerID {
		return &ConflictError{Reason: "travel booking belongs to another customer"}
	}
	if travel.Status != models.BookingConfirmed {
		return &ConflictError{Reason: "only confirmed travel bookings can be cancelled"}
	}
	return s.DB.WithContext(ctx).Model(&travel).Update("status", models.BookingCancelled).Error
}
