package tutorRepo

import (
	"context"
	"errors"

	"edspire/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTutorNotFound is returned when no tutor profile matches the lookup.
var ErrTutorNotFound = errors.New("tutor not found")

// TutorRepository defines data access for tutor directory profiles.
type TutorRepository interface {
	GetByID(ctx context.Context, id string) (*models.TutorProfile, error)
	GetAll(ctx context.Context) ([]models.TutorProfile, error)
	Create(ctx context.Context, profile *models.TutorProfile) error
	Update(ctx context.Context, profile *models.TutorProfile) error
	SetAvatar(ctx context.Context, id, avatarURL string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoTutorRepo struct {
	coll *mongo.Collection
}

// NewMongoTutorRepo constructs a TutorRepository on the given client.
func NewMongoTutorRepo(client *mongo.Client, dbName string) TutorRepository {
	return &mongoTutorRepo{
		coll: client.Database(dbName).Collection("tutors"),
	}
}
