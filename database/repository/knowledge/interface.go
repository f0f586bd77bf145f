// File: database/repository/knowledge/interface.go
package knowledgeRepo

import (
	"context"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// KnowledgeRepository provides business settings and the free-text knowledge
// base used for answering business questions.
type KnowledgeRepository interface {
	GetBusinessSettings(ctx context.Context) (*models.BusinessSettings, error)
	GetBusinessKnowledge(ctx context.Context) ([]models.BusinessKnowledge, error)
}

type mongoKnowledgeRepo struct {
	settingsColl  *mongo.Collection
	knowledgeColl *mongo.Collection
}

// NewMongoKnowledgeRepo constructs a new MongoDB KnowledgeRepository.
func NewMongoKnowledgeRepo() KnowledgeRepository {
	db := database.DB()
	return &mongoKnowledgeRepo{
		settingsColl:  db.Collection("business_settings"),
		knowledgeColl: db.Collection("business_knowledge"),
	}
}
