package clientRepo

import (
	"context"
	"fmt"
	"time"

	"glospa/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoClientRepo) GetByPhone(ctx context.Context, phone string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := repo.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&client); err != nil {
		return nil, fmt.Errorf("error fetching client by phone: %w", err)
	}
	return &client, nil
}

func (repo *mongoClientRepo) GetOrCreateByPhone(ctx context.Context, phone string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Upsert keyed on phone; $setOnInsert keeps an existing record untouched.
	filter := bson.M{"phone": phone}
	update := bson.M{
		"$setOnInsert": models.Client{
			ID:        uuid.New().String(),
			Phone:     phone,
			FirstName: "SMS Client",
			CreatedAt: time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var client models.Client
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("client upsert returned no document: %w", err)
		}
		return nil, fmt.Errorf("error upserting client by phone: %w", err)
	}
	return &client, nil
}
