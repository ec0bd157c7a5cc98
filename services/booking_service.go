// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayhub-backend/config"
	"stayhub-backend/metrics"
	"stayhub-backend/models"
	"stayhub-backend/utils"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: the atomic create sequence,
// checkout and cancellation. Every mutation of Booking/Payment/Room state
// runs inside a single transaction with the Room row locked.
type BookingService struct {
	DB      *gorm.DB
	Pricing config.PricingConfig
	Cache   *AvailabilityCache
	Log     zerolog.Logger
}

func NewBookingService(db *gorm.DB, pricing config.PricingConfig, cache *AvailabilityCache, log zerolog.Logger) *BookingService {
	return &BookingService{DB: db, Pricing: pricing, Cache: cache, Log: log}
}

type CreateBookingInput struct {
	CustomerID    uint
	RoomID        uint
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	PaymentMethod string
}

func (in *CreateBookingInput) validate() error {
	ve := newValidationError()

	if in.CustomerID == 0 {
		ve.add("customer_id", "customer id is required")
	}
	if in.RoomID == 0 {
		ve.add("room_id", "room id is required")
	}
	if in.CheckIn.IsZero() {
		ve.add("check_in", "check-in date is required")
	}
	if in.CheckOut.IsZero() {
		ve.add("check_out", "check-out date is required")
	}
	if in.Guests < 1 {
		ve.add("guests", "at least one guest is required")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		ve.add("payment_method", "payment method is required")
	}

	if ve.hasErrors() {
		return ve
	}
	return nil
}

// CreateBooking validates a room/date/guest request, prices the stay and
// atomically persists the booking, its payment and the room-state
// transition — or fails with no partial state.
//
// Precondition order: customer active → room exists (type loaded) → dates
// valid → room available. The availability check is repeated under a row
// lock inside the transaction and held through commit, so two concurrent
// submissions for the same room cannot both pass it.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var customer models.User
	if err := s.DB.WithContext(ctx).First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "customer"}
		}
		return nil, fmt.Errorf("db error checking customer %d: %w", in.CustomerID, err)
	}
	if !customer.Active {
		ve := newValidationError()
		ve.add("customer_id", "account is not active")
		return nil, ve
	}

	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("RoomType").First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "room"}
		}
		return nil, fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
	}

	ve := newValidationError()
	if !in.CheckOut.After(in.CheckIn) {
		ve.add("check_out", "check-out must be after check-in")
	}
	maxOccupancy := room.MaxOccupancy
	if maxOccupancy == 0 {
		maxOccupancy = room.RoomType.MaxGuests
	}
	if maxOccupancy > 0 && in.Guests > maxOccupancy {
		ve.add("guests", fmt.Sprintf("room holds at most %d guests", maxOccupancy))
	}
	if ve.hasErrors() {
		return nil, ve
	}

	if !room.IsAvailable() {
		return nil, &ConflictError{Reason: "room is not available"}
	}

	nights := Nights(in.CheckIn, in.CheckOut)

	var bookingID uint
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-read under FOR UPDATE; the lock is held through commit so a
		// concurrent submission for the same room serializes behind us and
		// then fails this check.
		var locked models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, in.RoomID).Error; err != nil {
			return err
		}
		if !locked.IsAvailable() {
			return &ConflictError{Reason: "room is no longer available"}
		}

		quote := ComputeQuote(s.Pricing, locked.Price, nights, in.Guests)

		booking := models.Booking{
			CustomerID:     in.CustomerID,
			RoomID:         in.RoomID,
			Status:         models.BookingConfirmed,
			PaymentStatus:  models.PaymentStatePending,
			CheckInDate:    in.CheckIn,
			CheckOutDate:   in.CheckOut,
			Nights:         quote.Nights,
			NumberOfGuests: in.Guests,
			TotalPrice:     quote.Total,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		ref := utils.BookingReference(booking.ID, in.CustomerID, in.RoomID, in.CheckIn, in.CheckOut)
		if err := tx.Model(&booking).Update("reference_code", ref).Error; err != nil {
			return fmt.Errorf("failed to set reference code: %w", err)
		}

		payment := models.Payment{
			BookingID:      booking.ID,
			Amount:         quote.Total,
			Method:         in.PaymentMethod,
			Status:         models.PaymentCompleted,
			TransactionRef: utils.TransactionRef(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		if err := tx.Model(&booking).Update("payment_status", models.PaymentStatePaid).Error; err != nil {
			return fmt.Errorf("failed to mark booking paid: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", in.RoomID).
			Update("status", models.RoomOccupied).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", in.RoomID, err)
		}

		return nil
	})

	if txErr != nil {
		var ce *ConflictError
		if errors.As(txErr, &ce) {
			metrics.IncBookingConflict()
			return nil, ce
		}
		tf := classifyTxError(txErr)
		s.Log.Error().Err(txErr).Str("reason", tf.Reason).
			Uint("room_id", in.RoomID).Uint("customer_id", in.CustomerID).
			Msg("booking transaction rolled back")
		if tf.Reason == ReasonConstraint || tf.Reason == ReasonLockTimeout {
			// A unique-overlap constraint or lock wait at commit time is the
			// double-booking signal.
			metrics.IncBookingConflict()
			return nil, &ConflictError{Reason: "room is no longer available"}
		}
		return nil, tf
	}

	// Defensive read-back: the commit reported success, so the booking must
	// be readable as confirmed/paid with the room occupied. Anything else is
	// a storage anomaly, reported as its own error class.
	booking, err := s.verifyCommitted(ctx, bookingID, in.RoomID)
	if err != nil {
		s.Log.Error().Err(err).Uint("booking_id", bookingID).Msg("booking integrity check failed")
		return nil, err
	}

	s.Cache.Invalidate(ctx)
	metrics.IncBookingCreated()
	s.Log.Info().
		Uint("booking_id", booking.ID).
		Str("reference", booking.ReferenceCode).
		Float64("total", booking.TotalPrice).
		Msg("booking confirmed")

	return booking, nil
}

func (s *BookingService) verifyCommitted(ctx context.Context, bookingID, roomID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).
		Preload("Payments").
		Preload("Room").
		Preload("Customer").
		First(&booking, bookingID).Error; err != nil {
		return nil, &IntegrityError{Detail: fmt.Sprintf("booking %d not readable after commit: %v", bookingID, err)}
	}

	if booking.Status != models.BookingConfirmed || booking.PaymentStatus != models.PaymentStatePaid {
		return nil, &IntegrityError{Detail: fmt.Sprintf(
			"booking %d has status=%s payment_status=%s after commit", bookingID, booking.Status, booking.PaymentStatus)}
	}

	completed := 0
	for _, p := range booking.Payments {
		if p.Status == models.PaymentCompleted {
			completed++
		}
	}
	if completed != 1 {
		return nil, &IntegrityError{Detail: fmt.Sprintf("booking %d has %d completed payments", bookingID, completed)}
	}

	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, roomID).Error; err != nil {
		return nil, &IntegrityError{Detail: fmt.Sprintf("room %d not readable after commit: %v", roomID, err)}
	}
	if room.Status != models.RoomOccupied {
		return nil, &IntegrityError{Detail: fmt.Sprintf("room %d has status=%s after commit", roomID, room.Status)}
	}

	return &booking, nil
}

// CheckoutResult reports what the checkout transaction did.
type CheckoutResult struct {
	Booking  *models.Booking `json:"booking"`
	LateDays int             `json:"late_days"`
	LateFee  float64         `json:"late_fee"`
}

// CheckoutBooking completes a confirmed booking: marks it completed, closes
// the stay record, charges the late-checkout fee when the booked check-out
// date has passed, and returns the room to available. One transaction.
func (s *BookingService) CheckoutBooking(ctx context.Context, bookingID uint) (*CheckoutResult, error) {
	now := time.Now().UTC()
	result := &CheckoutResult{}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "booking"}
			}
			return err
		}

		switch booking.Status {
		case models.BookingCompleted:
			return &ConflictError{Reason: "booking already checked out"}
		case models.BookingCancelled:
			return &ConflictError{Reason: "booking is cancelled"}
		case models.BookingConfirmed:
			// ok
		default:
			return &ConflictError{Reason: "booking cannot be checked out"}
		}

		lateDays, lateFee := LateCheckoutFee(s.Pricing, booking.CheckOutDate, now)
		if lateFee > 0 {
			payment := models.Payment{
				BookingID:      booking.ID,
				Amount:         lateFee,
				Method:         models.PaymentMethodLateFee,
				Status:         models.PaymentCompleted,
				TransactionRef: utils.TransactionRef(),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("failed to record late fee: %w", err)
			}
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingCompleted,
			"checked_out_at": now,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("status", models.RoomAvailable).Error; err != nil {
			return err
		}

		result.LateDays = lateDays
		result.LateFee = lateFee
		return nil
	})

	if txErr != nil {
		var ce *ConflictError
		var ne *NotFoundError
		if errors.As(txErr, &ce) || errors.As(txErr, &ne) {
			return nil, txErr
		}
		tf := classifyTxError(txErr)
		s.Log.Error().Err(txErr).Str("reason", tf.Reason).Uint("booking_id", bookingID).
			Msg("checkout transaction rolled back")
		return nil, tf
	}

	booking, err := s.GetBookingDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result.Booking = booking

	s.Cache.Invalidate(ctx)
	metrics.IncBookingCheckedOut()
	s.Log.Info().Uint("booking_id", bookingID).Float64("late_fee", result.LateFee).Msg("booking checked out")

	return result, nil
}

// CancelBooking cancels a confirmed booking that hasn't checked in yet,
// records the refund and frees the room.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uint) error {
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "booking"}
			}
			return err
		}

		if booking.Status != models.BookingConfirmed {
			return &ConflictError{Reason: "only confirmed bookings can be cancelled"}
		}
		if booking.CheckedInAt != nil {
			return &ConflictError{Reason: "booking already checked in"}
		}

		refund := models.Payment{
			BookingID:      booking.ID,
			Amount:         -booking.TotalPrice,
			Method:         models.PaymentMethodRefund,
			Status:         models.PaymentRefunded,
			TransactionRef: utils.TransactionRef(),
		}
		if err := tx.Create(&refund).Error; err != nil {
			return fmt.Errorf("failed to record refund: %w", err)
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingCancelled,
			"payment_status": models.PaymentStateRefunded,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", booking.RoomID, models.RoomOccupied).
			Update("status", models.RoomAvailable).Error; err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		var ce *ConflictError
		var ne *NotFoundError
		if errors.As(txErr, &ce) || errors.As(txErr, &ne) {
			return txErr
		}
		tf := classifyTxError(txErr)
		s.Log.Error().Err(txErr).Str("reason", tf.Reason).Uint("booking_id", bookingID).
			Msg("cancel transaction rolled back")
		return tf
	}

	s.Cache.Invalidate(ctx)
	return nil
}

// MarkCheckedIn stamps the arrival time on a confirmed booking.
func (s *BookingService) MarkCheckedIn(ctx context.Context, bookingID uint) error {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "booking"}
		}
		return err
	}
	if booking.Status != models.BookingConfirmed {
		return &ConflictError{Reason: "booking is not confirmed"}
	}
	if booking.CheckedInAt != nil {
		return nil // idempotent
	}
	now := time.Now().UTC()
	return s.DB.WithContext(ctx).Model(&booking).Update("checked_in_at", now).Error
}

func (s *BookingService) GetBookingDetails(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.WithContext(ctx).
		Preload("Room.RoomType").
		Preload("Customer").
		Preload("Payments").
		First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "booking"}
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &bk, nil
}

func (s *BookingService) GetAllWithRelations(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Room.RoomType").
		Preload("Payments").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetCustomerBookings(ctx context.Context, customerID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.WithContext(ctx).
		Preload("Room.RoomType").
		Preload("Payments").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customer bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetPayments(ctx context.Context, bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	return payments, nil
}
