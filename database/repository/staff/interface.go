// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository provides read access to staff and their service assignments.
type StaffRepository interface {
	GetAllStaff(ctx context.Context) ([]models.Staff, error)
	GetStaffForService(ctx context.Context, serviceID string) ([]models.Staff, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}
