package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type createReviewPayload struct {
	RoomID  uint   `json:"room_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var payload createReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	review, err := rc.Reviews.Create(c.Request.Context(),
		middleware.CurrentUserID(c), payload.RoomID, payload.Rating, payload.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (rc *ReviewController) GetRoomReviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := rc.Reviews.ListByRoom(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}
