package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stayhub-backend/models"

	"gorm.io/gorm"
)

type ComplaintService struct {
	DB *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{DB: db}
}

func (s *ComplaintService) Create(ctx context.Context, customerID uint, bookingID *uint, subject, body string) (*models.Complaint, error) {
	ve := newValidationError()
	if strings.TrimSpace(subject) == "" {
		ve.add("subject", "subject is required")
	}
	if strings.TrimSpace(body) == "" {
		ve.add("body", "body is required")
	}
	if ve.hasErrors() {
		return nil, ve
	}

	if bookingID != nil {
		var booking models.Booking
		if err := s.DB.WithContext(ctx).First(&booking, *bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "booking"}
			}
			return nil, err
		}
		if booking.CustomerID != customerID {
			return nil, &ConflictError{Reason: "booking belongs to another customer"}
		}
	}

	complaint := models.Complaint{
		CustomerID: customerID,
		BookingID:  bookingID,
		Subject:    strings.TrimSpace(subject),
		Body:       strings.TrimSpace(body),
		Status:     models.ComplaintOpen,
	}
	if err := s.DB.WithContext(ctx).Create(&complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return &complaint, nil
}

func (s *ComplaintService) List(ctx context.Context, status string) ([]models.Complaint, error) {
	q := s.DB.WithContext(ctx).Preload("Customer").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var complaints []models.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

func (s *ComplaintService) UpdateStatus(ctx context.Context, id uint, status models.ComplaintStatus) error {
	switch status {
	case models.ComplaintOpen, models.ComplaintInProgress, models.ComplaintResolved:
	default:
		ve := newValidationError()
		ve.add("status", "unknown complaint status")
		return ve
	}

	result := s.DB.WithContext(ctx).Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "complaint"}
	}
	return nil
}
