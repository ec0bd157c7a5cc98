package controllers

import (
	"net/http"

	"stayhub-backend/config"
	"stayhub-backend/models"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// Hotel settings are a singleton row, created by the seed.

func GetHotelSettings(c *gin.Context) {
	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "settings not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "settings not found")
		return
	}

	updates := map[string]interface{}{
		"name":     payload.Name,
		"address":  payload.Address,
		"phone":    payload.Phone,
		"email":    payload.Email,
		"website":  payload.Website,
		"currency": payload.Currency,
	}
	if err := config.DB.Model(&setting).Updates(updates).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, setting)
}
