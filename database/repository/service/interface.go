package serviceRepo

import (
	"context"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceSummary, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by the
// "services" collection. A nil database yields a repository whose
// operations report ErrNotConnected.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &mongoServiceRepo{}
	if db != nil {
		repo.coll = db.Collection("services")
	}
	return repo
}
