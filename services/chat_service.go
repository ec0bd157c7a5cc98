package services

import (
	"context"
	"fmt"
	"strings"

	"stayhub-backend/models"

	"gorm.io/gorm"
)

// FrontDeskPool is the recipient id for messages addressed to whichever
// receptionist picks them up.
const FrontDeskPool uint = 0

type ChatService struct {
	DB *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{DB: db}
}

func (s *ChatService) Send(ctx context.Context, senderID, recipientID uint, body string) (*models.ChatMessage, error) {
	if strings.TrimSpace(body) == "" {
		ve := newValidationError()
		ve.add("body", "message body is required")
		return nil, ve
	}

	msg := models.ChatMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        strings.TrimSpace(body),
	}
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &msg, nil
}

// Conversation returns messages between a customer and the front desk (or a
// specific staff member), oldest first, for polling clients. sinceID lets a
// poller fetch only what it hasn't seen.
func (s *ChatService) Conversation(ctx context.Context, userID, peerID uint, sinceID uint) ([]models.ChatMessage, error) {
	q := s.DB.WithContext(ctx).
		Preload("Sender").
		Where(
			"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, peerID, peerID, userID,
		)
	if peerID == FrontDeskPool {
		// Pool messages: anything the customer sent to the pool plus any
		// staff reply addressed to them.
		q = s.DB.WithContext(ctx).
			Preload("Sender").
			Where("(sender_id = ? AND recipient_id = ?) OR recipient_id = ?", userID, FrontDeskPool, userID)
	}
	if sinceID > 0 {
		q = q.Where("id > ?", sinceID)
	}

	var msgs []models.ChatMessage
	if err := q.Order("id ASC").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return msgs, nil
}

func (s *ChatService) MarkRead(ctx context.Context, recipientID uint, upToID uint) error {
	return s.DB.WithContext(ctx).Model(&models.ChatMessage{}).
		Where("recipient_id = ? AND id <= ? AND read_flag = ?", recipientID, upToID, false).
		Update("read_flag", true).Error
}

// PendingForFrontDesk lists unread pool messages for the staff chat view.
func (s *ChatService) PendingForFrontDesk(ctx context.Context) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := s.DB.WithContext(ctx).
		Preload("Sender").
		Where("recipient_id = ? AND read_flag = ?", FrontDeskPool, false).
		Order("id ASC").
		Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending messages: %w", err)
	}
	return msgs, nil
}
