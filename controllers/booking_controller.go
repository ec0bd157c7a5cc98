package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
	Audit    *services.AuditService
}

func NewBookingController(bookings *services.BookingService, audit *services.AuditService) *BookingController {
	return &BookingController{Bookings: bookings, Audit: audit}
}

type createBookingPayload struct {
	RoomID        uint   `json:"room_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Guests        int    `json:"guests"`
	PaymentMethod string `json:"payment_method"`
}

// CreateBooking handles POST /api/bookings. The customer id comes from the
// token, never the payload.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	checkIn, err := parseDate(payload.CheckIn)
	if err != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, "validation failed",
			map[string][]string{"check_in": {"invalid date format, want YYYY-MM-DD"}})
		return
	}
	checkOut, err := parseDate(payload.CheckOut)
	if err != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, "validation failed",
			map[string][]string{"check_out": {"invalid date format, want YYYY-MM-DD"}})
		return
	}

	booking, err := bc.Bookings.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		CustomerID:    middleware.CurrentUserID(c),
		RoomID:        payload.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        payload.Guests,
		PaymentMethod: payload.PaymentMethod,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetMyBookings lists the caller's own bookings.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	list, err := bc.Bookings.GetCustomerBookings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetBookings lists every booking, for the staff back-office.
func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.Bookings.GetAllWithRelations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetBookingDetails(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Customers may only read their own bookings.
	claims := middleware.CurrentClaims(c)
	if claims != nil && !middleware.RoleHasPermission(claims.Role, middleware.PermBookingView) &&
		booking.CustomerID != claims.UserID {
		utils.JSONError(c, http.StatusForbidden, "not your booking")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) GetPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payments, err := bc.Bookings.GetPayments(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

func (bc *BookingController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.Bookings.MarkCheckedIn(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	bc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c), "booking.checkin", "booking", id, "")
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "guest checked in"})
}

func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := bc.Bookings.CheckoutBooking(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	bc.Audit.Record(c.Request.Context(), middleware.CurrentUserID(c), "booking.checkout", "booking", id, "")
	utils.JSONSuccess(c, http.StatusOK, result)
}

// CancelBooking lets a customer cancel their own confirmed booking.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bc.Bookings.GetBookingDetails(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if booking.CustomerID != middleware.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "not your booking")
		return
	}

	if err := bc.Bookings.CancelBooking(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking cancelled, refund recorded"})
}
