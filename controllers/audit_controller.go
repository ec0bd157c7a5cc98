package controllers

import (
	"net/http"
	"strconv"

	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuditController struct {
	Audit *services.AuditService
}

func NewAuditController(audit *services.AuditService) *AuditController {
	return &AuditController{Audit: audit}
}

func (ac *AuditController) GetAuditLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := ac.Audit.List(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}
