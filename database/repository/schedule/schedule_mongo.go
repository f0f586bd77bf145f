package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"glospa/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (repo *mongoScheduleRepo) GetStaffSchedules(ctx context.Context, staffID, dayOfWeek, date string) ([]models.StaffSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Validity window: startDate <= date and (endDate missing/null or >= date).
	// Dates are "YYYY-MM-DD" strings, so string comparison orders correctly.
	filter := bson.M{
		"staffId":   staffID,
		"dayOfWeek": dayOfWeek,
		"startDate": bson.M{"$lte": date},
		"$or": bson.A{
			bson.M{"endDate": bson.M{"$exists": false}},
			bson.M{"endDate": nil},
			bson.M{"endDate": bson.M{"$gte": date}},
		},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching schedules for staff %s on %s: %w", staffID, dayOfWeek, err)
	}
	defer cursor.Close(ctx)

	var rows []models.StaffSchedule
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding schedules for staff %s: %w", staffID, err)
	}
	return rows, nil
}
