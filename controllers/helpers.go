package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Raw storage error text never reaches the response body.
func respondServiceError(c *gin.Context, err error) {
	if ve := services.AsValidationError(err); ve != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, "validation failed", ve.Fields())
		return
	}
	if services.IsNotFound(err) {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	if services.IsConflict(err) {
		utils.JSONError(c, http.StatusConflict, err.Error())
		return
	}
	if services.IsIntegrityError(err) {
		utils.JSONError(c, http.StatusInternalServerError, "could not confirm booking, contact support")
		return
	}

	var tf *services.TxFailure
	if errors.As(err, &tf) {
		if tf.Reason == services.ReasonTimeout {
			utils.JSONError(c, http.StatusServiceUnavailable, "please try again")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "booking failed, please try again")
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal error")
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts "2006-01-02" or RFC3339, like the booking form sends.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
