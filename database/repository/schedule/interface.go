// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"glospa/database"
	"glospa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository provides read access to staff working-hour rows.
type ScheduleRepository interface {
	// GetStaffSchedules returns every schedule row for the staff member and
	// day of week whose validity range covers the given date. Both available
	// and blocked rows are returned; layering is the availability engine's job.
	GetStaffSchedules(ctx context.Context, staffID, dayOfWeek, date string) ([]models.StaffSchedule, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("staff_schedules"),
	}
}
