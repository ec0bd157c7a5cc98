package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type ComplaintController struct {
	Complaints *services.ComplaintService
	Audit      *services.AuditService
}

func NewComplaintController(complaints *services.ComplaintService, audit *services.AuditService) *ComplaintController {
	return &ComplaintController{Complaints: complaints, Audit: audit}
}

type createComplaintPayload struct {
	BookingID *uint  `json:"booking_id,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func (cc *ComplaintController) CreateComplaint(c *gin.Context) {
	var payload createComplaintPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	complaint, err := cc.Complaints.Create(c.Request.Context(),
		middleware.CurrentUserID(c), payload.BookingID, payload.Subject, payload.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, complaint)
}

func (cc *ComplaintController) GetComplaints(c *gin.Context) {
	complaints, err := cc.Complaints.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaints)
}

type complaintStatusPayload struct {
	Status models.ComplaintStatus `json:"status"`
}

func (cc *ComplaintController) UpdateComplaintStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload complaintStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := cc.Complaints.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	cc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c),
		"complaint.status", "complaint", id, string(payload.Status))
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "complaint updated"})
}
