// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"edspire/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced to the service layer. Store-level "no documents"
// is always translated into ErrSlotNotFound so callers never depend on the
// driver.
var (
	ErrSlotNotFound = errors.New("availability slot not found")
	ErrSlotFull     = errors.New("availability slot is at capacity")
)

// SlotRepository persists per-tutor availability slots. One document per slot,
// keyed by slot id and scoped by tutor id (the flattened form of the
// users/{tutorId}/availability/{slotId} layout).
type SlotRepository interface {
	// Create inserts a single slot, assigning an id when empty.
	Create(ctx context.Context, slot *models.AvailabilitySlot) (string, error)
	// DeleteByTutorID removes every slot belonging to the tutor and reports
	// how many were deleted. Used by the destructive reseed.
	DeleteByTutorID(ctx context.Context, tutorID string) (int64, error)
	// GetUpcoming returns slots whose end is at or after the given instant,
	// ordered ascending by end.
	GetUpcoming(ctx context.Context, tutorID string, at time.Time) ([]models.AvailabilitySlot, error)
	// GetByID retrieves one tutor-scoped slot.
	GetByID(ctx context.Context, tutorID, slotID string) (*models.AvailabilitySlot, error)
	// TryEnroll atomically adds a student to a slot while capacity remains.
	// Returns ErrSlotFull when the guarded update matches nothing but the
	// slot exists, ErrSlotNotFound otherwise. Enrolling an already-enrolled
	// student is a no-op success.
	TryEnroll(ctx context.Context, tutorID, slotID, studentID string) error
	// EnsureIndexes creates the collection's indexes.
	EnsureIndexes(ctx context.Context) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepository on the given client.
func NewMongoSlotRepo(client *mongo.Client, dbName string) SlotRepository {
	return &mongoSlotRepo{
		coll: client.Database(dbName).Collection("availability"),
	}
}
