package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
	Audit *services.AuditService
}

func NewRoomController(rooms *services.RoomService, audit *services.AuditService) *RoomController {
	return &RoomController{Rooms: rooms, Audit: audit}
}

// GetAvailableRooms is the public room search (cached listing).
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAvailable(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// GetRooms lists every room including occupied ones, for staff.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if room.RoomNumber == "" {
		utils.JSONFieldErrors(c, http.StatusBadRequest, "validation failed",
			map[string][]string{"roomNumber": {"room number is required"}})
		return
	}

	if err := rc.Rooms.Create(c.Request.Context(), &room); err != nil {
		respondServiceError(c, err)
		return
	}

	rc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c), "room.create", "room", room.ID, room.RoomNumber)
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := rc.Rooms.Update(c.Request.Context(), id, updates); err != nil {
		respondServiceError(c, err)
		return
	}

	rc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c), "room.update", "room", id, "")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room updated"})
}

type roomStatusPayload struct {
	Status models.RoomStatus `json:"status"`
}

func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := rc.Rooms.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	rc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c), "room.status", "room", id, string(payload.Status))
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room status updated"})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.Rooms.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	rc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c), "room.delete", "room", id, "")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
