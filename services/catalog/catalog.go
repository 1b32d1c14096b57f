package catalog

import (
	"context"
	"errors"

	"cardoctor/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListServices returns the full catalogue, unfiltered and unpaginated.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetAll(ctx)
}

// GetService validates the identifier before touching storage, then
// returns the restricted projection of the matching service.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.ServiceSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	summary, err := s.Repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return summary, nil
}
