// File: database/repository/respondlog/interface.go
package respondlogRepo

import (
	"context"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RespondLogRepository records every auto-response for the audit trail.
type RespondLogRepository interface {
	Append(ctx context.Context, entry models.RespondLogEntry) error
	RecentForPhone(ctx context.Context, phone string, limit int64) ([]models.RespondLogEntry, error)
}

type mongoRespondLogRepo struct {
	coll *mongo.Collection
}

// NewMongoRespondLogRepo constructs a new MongoDB RespondLogRepository.
func NewMongoRespondLogRepo() RespondLogRepository {
	return &mongoRespondLogRepo{
		coll: database.DB().Collection("sms_respond_log"),
	}
}
