package catalogRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glospa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoCatalogRepo) GetAllServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching service catalog: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding service catalog: %w", err)
	}
	return services, nil
}

func (repo *mongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &svc, nil
}

// FindServiceByName resolves a service by case-insensitive substring match
// against the canonical catalog names, the way SMS text references services.
func (repo *mongoCatalogRepo) FindServiceByName(ctx context.Context, name string) (*models.Service, error) {
	services, err := repo.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range services {
		if strings.Contains(strings.ToLower(services[i].Name), needle) {
			return &services[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
