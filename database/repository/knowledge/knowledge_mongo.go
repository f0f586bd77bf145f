package knowledgeRepo

import (
	"context"
	"fmt"
	"time"

	"glospa/config"
	"glospa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoKnowledgeRepo) GetBusinessSettings(ctx context.Context) (*models.BusinessSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.BusinessSettings
	if err := repo.settingsColl.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		if err == mongo.ErrNoDocuments {
			// Fall back to configured identity when nothing is stored yet.
			return &models.BusinessSettings{
				BusinessName: config.AppConfig.BusinessName,
				Phone:        config.AppConfig.BusinessPhone,
			}, nil
		}
		return nil, fmt.Errorf("error fetching business settings: %w", err)
	}
	return &settings, nil
}

func (repo *mongoKnowledgeRepo) GetBusinessKnowledge(ctx context.Context) ([]models.BusinessKnowledge, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.knowledgeColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching business knowledge: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.BusinessKnowledge
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding business knowledge: %w", err)
	}
	return entries, nil
}
