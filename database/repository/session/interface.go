package sessionRepo

import (
	"context"
	"errors"
	"time"

	"edspire/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSessionNotFound is returned when no session matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists booked tutoring sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) (string, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	// ListUpcoming returns scheduled sessions ending at or after the instant
	// where the user participates as student or tutor, start-ascending.
	ListUpcoming(ctx context.Context, userID string, at time.Time) ([]models.Session, error)
	SetStatus(ctx context.Context, id, status string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a SessionRepository on the given client.
func NewMongoSessionRepo(client *mongo.Client, dbName string) SessionRepository {
	return &mongoSessionRepo{
		coll: client.Database(dbName).Collection("sessions"),
	}
}
