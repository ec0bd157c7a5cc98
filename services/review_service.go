package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stayhub-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create accepts a review from a customer who has completed a stay in the
// room.
func (s *ReviewService) Create(ctx context.Context, customerID, roomID uint, rating int, comment string) (*models.Review, error) {
	ve := newValidationError()
	if rating < 1 || rating > 5 {
		ve.add("rating", "rating must be between 1 and 5")
	}
	if roomID == 0 {
		ve.add("room_id", "room id is required")
	}
	if ve.hasErrors() {
		return nil, ve
	}

	var stayed int64
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("customer_id = ? AND room_id = ? AND status = ?", customerID, roomID, models.BookingCompleted).
		Count(&stayed).Error; err != nil {
		return nil, fmt.Errorf("failed to check stay history: %w", err)
	}
	if stayed == 0 {
		return nil, &ConflictError{Reason: "reviews require a completed stay in this room"}
	}

	review := models.Review{
		CustomerID: customerID,
		RoomID:     roomID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	}
	if err := s.DB.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

func (s *ReviewService) ListByRoom(ctx context.Context, roomID uint) ([]models.Review, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "room"}
		}
		return nil, err
	}

	var reviews []models.Review
	if err := s.DB.WithContext(ctx).
		Preload("Customer").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
