package bookingRepo

import (
	"context"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) (*models.InsertResult, error)
	Find(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the
// "bookings" collection. A nil database yields a repository whose
// operations report ErrNotConnected.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &mongoBookingRepo{}
	if db != nil {
		repo.coll = db.Collection("bookings")
	}
	return repo
}
