package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-backend/errors"
	"restaurant-backend/models"
)

// ReservationService is what the reservation endpoint needs from the
// service layer.
type ReservationService interface {
	Upsert(ctx context.Context, reservation *models.Reservation) error
}

type ReservationController struct {
	service ReservationService
}

func NewReservationController(service ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

type ReservationRequest struct {
	Name   *string     `json:"name" binding:"required"`
	Phone  *string     `json:"phone" binding:"required"`
	Date   *string     `json:"date" binding:"required"`
	Time   *string     `json:"time" binding:"required"`
	Guests interface{} `json:"guests"`
}

// UpsertReservation fully replaces the reservation for the phone; no
// per-field merge.
func (rc *ReservationController) UpsertReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required reservation fields"})
		return
	}
	// Guests skips `required` so that a legitimate 0 is not rejected
	// as a missing field.
	if req.Guests == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required reservation fields"})
		return
	}

	phone := strings.TrimSpace(*req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number cannot be empty"})
		return
	}

	guests, ok := guestCount(req.Guests)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Guests must be a whole number"})
		return
	}

	reservation := &models.Reservation{
		Name:   *req.Name,
		Phone:  phone,
		Date:   *req.Date,
		Time:   *req.Time,
		Guests: guests,
	}
	if err := rc.service.Upsert(c.Request.Context(), reservation); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reservation successfully added/updated"})
}

// guestCount coerces the guests field to an integer: JSON numbers are
// truncated, numeric strings parsed.
func guestCount(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
