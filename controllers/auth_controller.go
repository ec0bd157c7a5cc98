package controllers

import (
	"errors"
	"net/http"

	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthController(auth *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

type registerPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, code, err := ac.Users.Register(c.Request.Context(), services.RegisterInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The verification code is returned in the response; wiring an email
	// sender is a deployment concern.
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"user":              user,
		"verification_code": code,
	})
}

type verifyPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (ac *AuthController) Verify(c *gin.Context) {
	var payload verifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ac.Users.Verify(c.Request.Context(), payload.Email, payload.Code); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "account verified"})
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	token, user, err := ac.Auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}
