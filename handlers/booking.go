package handlers

import (
	"errors"
	"net/http"

	"cardoctor/models"
	"cardoctor/services/booking"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking CRUD surface.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", "")
		return
	}

	result, err := h.Svc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("CreateBooking: insert failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to book the service", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListBookings handles GET /bookings?serviceId=&email=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		ServiceID: c.Query("serviceId"),
		Email:     c.Query("email"),
	}

	bookings, err := h.Svc.ListBookings(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, booking.ErrMissingQuery) {
			utils.JSONError(c, http.StatusBadRequest, "Missing serviceId or email", "")
			return
		}
		h.Logger.Error("ListBookings: query failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking handles PUT /bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", "")
		return
	}

	result, err := h.Svc.UpdateBooking(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidID) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID format", "")
			return
		}
		h.Logger.Error("UpdateBooking: update failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	result, err := h.Svc.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidID) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking ID format", "")
			return
		}
		h.Logger.Error("DeleteBooking: delete failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking", "")
		return
	}
	c.JSON(http.StatusOK, result)
}
