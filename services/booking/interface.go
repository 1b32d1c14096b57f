package booking

import (
	"context"

	bookingRepo "cardoctor/database/repository/booking"
	"cardoctor/models"
)

// BookingService manages customer reservations.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.Booking) (*models.InsertResult, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.UpdateResult, error)
	DeleteBooking(ctx context.Context, id string) (*models.DeleteResult, error)
}

type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
