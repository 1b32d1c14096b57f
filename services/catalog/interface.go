package catalog

import (
	"context"

	serviceRepo "cardoctor/database/repository/service"
	"cardoctor/models"
)

// CatalogService exposes read-only access to the repair-service catalogue.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.ServiceSummary, error)
}

type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
