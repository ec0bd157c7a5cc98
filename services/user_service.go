package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayhub-backend/models"
	"stayhub-backend/utils"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const verificationCodeTTL = 24 * time.Hour

type UserService struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewUserService(db *gorm.DB, log zerolog.Logger) *UserService {
	return &UserService{DB: db, Log: log}
}

type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Register creates an inactive customer account and its verification code.
// The code would normally go out by email; it is returned so the delivery
// channel stays outside this service.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	ve := newValidationError()
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		ve.add("email", "valid email is required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		ve.add("fullName", "full name is required")
	}
	if len(in.Password) < 8 {
		ve.add("password", "password must be at least 8 characters")
	}
	if ve.hasErrors() {
		return nil, "", ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := utils.GenerateVerificationCode(6)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	user := models.User{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Password: string(hash),
		Phone:    strings.TrimSpace(in.Phone),
		Role:     models.RoleCustomer,
		Active:   false,
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		expires := time.Now().UTC().Add(verificationCodeTTL)
		vc := models.VerificationCode{
			UserID:    user.ID,
			Code:      code,
			ExpiresAt: &expires,
		}
		return tx.Create(&vc).Error
	})
	if txErr != nil {
		if tf := classifyTxError(txErr); tf.Reason == ReasonConstraint {
			return nil, "", &ConflictError{Reason: "email already registered"}
		}
		return nil, "", fmt.Errorf("failed to register user: %w", txErr)
	}

	s.Log.Info().Uint("user_id", user.ID).Msg("customer registered, pending verification")
	return &user, code, nil
}

// Verify activates the account matching email+code, consuming the code.
func (s *UserService) Verify(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	code = strings.ToUpper(strings.TrimSpace(code))
	if email == "" || code == "" {
		ve := newValidationError()
		ve.add("code", "email and code are required")
		return ve
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "account"}
		}
		return err
	}
	if user.Active {
		return nil // already verified
	}

	now := time.Now().UTC()
	var vc models.VerificationCode
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND code = ? AND used_at IS NULL AND (expires_at IS NULL OR expires_at > ?)",
			user.ID, code, now).
		Order("id DESC").
		First(&vc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConflictError{Reason: "invalid or expired verification code"}
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&vc).Update("used_at", now).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("active", true).Error
	})
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List(ctx context.Context, role string) ([]models.User, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) SetActive(ctx context.Context, id uint, active bool) error {
	result := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "user"}
	}
	return nil
}
