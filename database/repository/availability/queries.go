// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edspire/models"
)

// GetUpcoming fetches every slot that has not yet ended at the reference
// instant, end-ascending. The status projection is computed client-side on
// this result; no pagination, the full set is loaded.
func (r *mongoSlotRepo) GetUpcoming(ctx context.Context, tutorID string, at time.Time) ([]models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tutorId": tutorID,
		"end":     bson.M{"$gte": at},
	}
	opts := options.Find().SetSort(bson.D{{Key: "end", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding availability slots: %w", err)
	}
	return slots, nil
}
