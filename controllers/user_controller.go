package controllers

import (
	"net/http"
	"strconv"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
	Audit *services.AuditService
}

func NewUserController(users *services.UserService, audit *services.AuditService) *UserController {
	return &UserController{Users: users, Audit: audit}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.Users.List(c.Request.Context(), c.Query("role"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

type activePayload struct {
	Active *bool `json:"active"`
}

func (uc *UserController) SetUserActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload activePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Active == nil {
		utils.JSONError(c, http.StatusBadRequest, "active flag is required")
		return
	}

	if id == middleware.CurrentUserID(c) && !*payload.Active {
		utils.JSONError(c, http.StatusConflict, "cannot deactivate your own account")
		return
	}

	if err := uc.Users.SetActive(c.Request.Context(), id, *payload.Active); err != nil {
		respondServiceError(c, err)
		return
	}

	uc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c),
		"user.active", "user", id, strconv.FormatBool(*payload.Active))
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user updated"})
}
