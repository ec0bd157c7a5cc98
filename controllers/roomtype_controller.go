package controllers

import (
	"net/http"

	"stayhub-backend/config"
	"stayhub-backend/models"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Find(&roomTypes).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomTypes)
}

func CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if rt.TypeName == "" {
		utils.JSONError(c, http.StatusBadRequest, "typeName is required")
		return
	}

	if err := config.DB.Create(&rt).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// Refuse to delete a type still referenced by rooms.
	var inUse int64
	config.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&inUse)
	if inUse > 0 {
		utils.JSONError(c, http.StatusConflict, "room type is still assigned to rooms")
		return
	}

	result := config.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "room type not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room type deleted"})
}
