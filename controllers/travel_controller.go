package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type TravelController struct {
	Travel *services.TravelService
}

func NewTravelController(travel *services.TravelService) *TravelController {
	return &TravelController{Travel: travel}
}

type createTravelPayload struct {
	Destination  string                 `json:"destination"`
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	Seats        int                    `json:"seats"`
	PricePerSeat float64                `json:"price_per_seat"`
	Itinerary    map[string]interface{} `json:"itinerary,omitempty"`
}

func (tc *TravelController) CreateTravelBooking(c *gin.Context) {
	var payload createTravelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	start, err := parseDate(payload.StartDate)
	if err != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, "validation failed",
			map[string][]string{"start_date": {"invalid date format, want YYYY-MM-DD"}})
		return
	}
	end, err := parseDate(payload.EndDate)
	if err != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, "validation failed",
			map[string][]string{"end_date": {"invalid date format, want YYYY-MM-DD"}})
		return
	}

	travel, err := tc.Travel.Create(c.Request.Context(), services.CreateTravelInput{
		CustomerID:   middleware.CurrentUserID(c),
		Destination:  payload.Destination,
		StartDate:    start,
		EndDate:      end,
		Seats:        payload.Seats,
		PricePerSeat: payload.PricePerSeat,
		Itinerary:    payload.Itinerary,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, travel)
}

func (tc *TravelController) GetMyTravelBookings(c *gin.Context) {
	list, err := tc.Travel.ListByCustomer(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (tc *TravelController) CancelTravelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.Travel.Cancel(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "travel booking cancelled"})
}
