// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"edspire/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.AvailabilitySlot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.StudentIDs == nil {
		slot.StudentIDs = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return "", err
	}
	return slot.ID, nil
}

func (r *mongoSlotRepo) DeleteByTutorID(ctx context.Context, tutorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"tutorId": tutorID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, tutorID, slotID string) (*models.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "tutorId": tutorID}
	var slot models.AvailabilitySlot
	err := r.coll.FindOne(ctx, filter).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// TryEnroll is a single guarded update: it only matches while the enrolled
// count is below studentLimit, so concurrent bookings cannot overshoot the
// capacity. $addToSet keeps repeat enrollment idempotent.
func (r *mongoSlotRepo) TryEnroll(ctx context.Context, tutorID, slotID, studentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":      slotID,
		"tutorId": tutorID,
		"$or": bson.A{
			bson.M{"$expr": bson.M{
				"$lt": bson.A{bson.M{"$size": "$studentIds"}, "$studentLimit"},
			}},
			bson.M{"studentIds": studentID},
		},
	}
	update := bson.M{"$addToSet": bson.M{"studentIds": studentID}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a full slot from a missing one.
		if _, err := r.GetByID(ctx, tutorID, slotID); err != nil {
			return err
		}
		return ErrSlotFull
	}
	return nil
}
