package booking

import (
	"context"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBooking persists a new reservation. The dueAmount has already
// been coerced to a number during request decoding.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.Booking) (*models.InsertResult, error) {
	input.ID = primitive.NilObjectID
	return s.Repo.Insert(ctx, input)
}

// ListBookings returns reservations matching the filter. At least one
// criterion is required; both combine with logical AND.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if filter.IsEmpty() {
		return nil, ErrMissingQuery
	}
	return s.Repo.Find(ctx, filter)
}

// UpdateBooking overwrites only the fields present in the update. The
// identifier is validated before any storage call; a zero matched count
// in the acknowledgment is the caller's "not found" signal.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.Repo.UpdateByID(ctx, oid, update.SetDocument())
}

// DeleteBooking removes a reservation; deleting a missing one is not an error.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.Repo.DeleteByID(ctx, oid)
}
