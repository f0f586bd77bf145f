// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository provides read access to the service catalog.
type CatalogRepository interface {
	GetAllServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	FindServiceByName(ctx context.Context, name string) (*models.Service, error)
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	return &mongoCatalogRepo{
		coll: database.DB().Collection("services"),
	}
}
