package serviceRepo

import (
	"context"

	"cardoctor/database"
	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll returns every service document in storage order.
func (r *mongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	if r.coll == nil {
		return nil, database.ErrNotConnected
	}

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetByID returns the restricted projection of a single service.
// A missing document surfaces as mongo.ErrNoDocuments.
func (r *mongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceSummary, error) {
	if r.coll == nil {
		return nil, database.ErrNotConnected
	}

	opts := options.FindOne().SetProjection(bson.M{
		"title":      1,
		"price":      1,
		"img":        1,
		"service_id": 1,
	})

	var summary models.ServiceSummary
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
