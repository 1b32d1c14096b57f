package bookingRepo

import (
	"context"

	"cardoctor/database"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Insert stores a new booking and reports the generated identifier.
func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) (*models.InsertResult, error) {
	if r.coll == nil {
		return nil, database.ErrNotConnected
	}

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}

	result := &models.InsertResult{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.InsertedID = oid.Hex()
	}
	return result, nil
}

// Find returns every booking matching the filter, in storage order.
func (r *mongoBookingRepo) Find(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if r.coll == nil {
		return nil, database.ErrNotConnected
	}

	cursor, err := r.coll.Find(ctx, filter.Query())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateByID overwrites only the supplied fields. Zero matched records
// is not an error; callers read the acknowledgment.
func (r *mongoBookingRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.UpdateResult, error) {
	if r.coll == nil {
		return nil, database.ErrNotConnected
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// DeleteByID removes a booking. Zero deleted records is not an error.
func (r *mongoBookingRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	if r.coll == nil {
		return nil, database.ErrNotConnected
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}
