// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository provides access to salon customers.
type ClientRepository interface {
	// GetOrCreateByPhone returns the client for the phone number, creating a
	// minimal record on first contact.
	GetOrCreateByPhone(ctx context.Context, phone string) (*models.Client, error)
	GetByPhone(ctx context.Context, phone string) (*models.Client, error)
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}
