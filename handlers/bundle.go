package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	IssueToken gin.HandlerFunc
	Logout     gin.HandlerFunc

	// Catalogue endpoints
	ListServices   gin.HandlerFunc
	GetServiceByID gin.HandlerFunc

	// Booking endpoints
	CreateBooking gin.HandlerFunc
	ListBookings  gin.HandlerFunc
	UpdateBooking gin.HandlerFunc
	DeleteBooking gin.HandlerFunc
}
