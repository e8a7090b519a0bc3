package tutorRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edspire/models"
)

func (r *mongoTutorRepo) GetByID(ctx context.Context, id string) (*models.TutorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile models.TutorProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTutorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor %s: %w", id, err)
	}
	return &profile, nil
}

func (r *mongoTutorRepo) GetAll(ctx context.Context) ([]models.TutorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutors: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.TutorProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("error decoding tutors: %w", err)
	}
	return profiles, nil
}

func (r *mongoTutorRepo) Create(ctx context.Context, profile *models.TutorProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.Rating == 0 {
		profile.Rating = models.DefaultTutorRating
	}
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create tutor: %w", err)
	}
	return nil
}

func (r *mongoTutorRepo) Update(ctx context.Context, profile *models.TutorProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update tutor %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrTutorNotFound
	}
	return nil
}

func (r *mongoTutorRepo) SetAvatar(ctx context.Context, id, avatarURL string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"avatar": avatarURL}})
	if err != nil {
		return fmt.Errorf("failed to set tutor avatar: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrTutorNotFound
	}
	return nil
}

// EnsureIndexes creates the tutors collection indexes.
func (r *mongoTutorRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "subjects", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create tutor indexes: %w", err)
	}
	return nil
}
