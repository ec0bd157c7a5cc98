package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayhub-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is everything a request needs to know about its caller. Carried in
// a signed token instead of server-side session state.
type Claims struct {
	UserID   uint            `json:"uid"`
	Role     models.UserRole `json:"role"`
	FullName string          `json:"name"`
	jwt.RegisteredClaims
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	DB       *gorm.DB
	Secret   []byte
	TokenTTL time.Duration
	Log      zerolog.Logger
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{DB: db, Secret: []byte(secret), TokenTTL: ttl, Log: log}
}

// Login checks credentials and issues a signed claims token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("db error loading account: %w", err)
	}

	if !user.Active {
		return "", nil, &ConflictError{Reason: "account is not active"}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return "", nil, err
	}

	s.Log.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return token, &user, nil
}

func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   user.ID,
		Role:     user.Role,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
			Issuer:    "stayhub-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and expiry and returns the claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
