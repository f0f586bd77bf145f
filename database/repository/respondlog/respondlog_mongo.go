package respondlogRepo

import (
	"context"
	"fmt"
	"time"

	"glospa/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoRespondLogRepo) Append(ctx context.Context, entry models.RespondLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if _, err := repo.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error appending respond log entry: %w", err)
	}
	return nil
}

func (repo *mongoRespondLogRepo) RecentForPhone(ctx context.Context, phone string, limit int64) ([]models.RespondLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, bson.M{"phone": phone}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching respond log for %s: %w", phone, err)
	}
	defer cursor.Close(ctx)

	var entries []models.RespondLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding respond log for %s: %w", phone, err)
	}
	return entries, nil
}
