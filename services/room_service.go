package services

import (
	"context"
	"errors"
	"fmt"

	"stayhub-backend/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type RoomService struct {
	DB    *gorm.DB
	Cache *AvailabilityCache
	Log   zerolog.Logger
}

func NewRoomService(db *gorm.DB, cache *AvailabilityCache, log zerolog.Logger) *RoomService {
	return &RoomService{DB: db, Cache: cache, Log: log}
}

func (s *RoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Preload("RoomType").Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// GetAvailable serves the public room search, read-through cached.
func (s *RoomService) GetAvailable(ctx context.Context) ([]models.Room, error) {
	if rooms, ok := s.Cache.GetAvailable(ctx); ok {
		return rooms, nil
	}

	var rooms []models.Room
	if err := s.DB.WithContext(ctx).
		Preload("RoomType").
		Where("status = ?", models.RoomAvailable).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	s.Cache.SetAvailable(ctx, rooms)
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "room"}
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.WithContext(ctx).First(&rt, *room.RoomTypeID).Error; err != nil {
			ve := newValidationError()
			ve.add("roomTypeId", "invalid room type")
			return ve
		}
		// Default pricing/occupancy from the type when not supplied.
		if room.Price == 0 {
			room.Price = rt.BasePrice
		}
		if room.MaxOccupancy == 0 {
			room.MaxOccupancy = rt.MaxGuests
		}
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		if tf := classifyTxError(err); tf.Reason == ReasonConstraint {
			return &ConflictError{Reason: fmt.Sprintf("room number %q already exists", room.RoomNumber)}
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *RoomService) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	// Never let a payload rewrite identity or timestamps.
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	result := s.DB.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "room"}
	}
	s.Cache.Invalidate(ctx)
	return nil
}

// UpdateStatus handles the housekeeping transitions (cleaning, maintenance,
// back to available). Occupancy itself is owned by the booking processor.
func (s *RoomService) UpdateStatus(ctx context.Context, id uint, status models.RoomStatus) error {
	switch status {
	case models.RoomAvailable, models.RoomCleaning, models.RoomMaintenance:
		// staff-settable
	case models.RoomOccupied:
		return &ConflictError{Reason: "occupied is set by the booking flow"}
	default:
		ve := newValidationError()
		ve.add("status", "unknown room status")
		return ve
	}
	return s.Update(ctx, id, map[string]interface{}{"status": status})
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "room"}
	}
	s.Cache.Invalidate(ctx)
	return nil
}
