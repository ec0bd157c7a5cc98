package services

import (
	"context"
	"fmt"

	"stayhub-backend/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type AuditService struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewAuditService(db *gorm.DB, log zerolog.Logger) *AuditService {
	return &AuditService{DB: db, Log: log}
}

// Record appends an audit row. Best-effort: a failed audit write is logged
// but never fails the action it describes.
func (s *AuditService) Record(ctx context.Context, actorID uint, action, entity string, entityID uint, detail string) {
	entry := models.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		s.Log.Warn().Err(err).Str("action", action).Msg("audit write failed")
	}
}

func (s *AuditService) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var entries []models.AuditLog
	if err := s.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	return entries, nil
}
