package tutor

import (
	"context"

	tutorRepo "edspire/database/repository/tutor"
	"edspire/models"
	"edspire/services/availability"
	"edspire/services/storage"
)

// TutorService serves the tutor directory with live availability decoration.
type TutorService interface {
	// List returns every profile decorated with its current status.
	List(ctx context.Context) ([]models.TutorView, error)
	// GetByID returns one decorated profile.
	GetByID(ctx context.Context, id string) (*models.TutorView, error)
	// CreateProfile registers a tutor in the directory.
	CreateProfile(ctx context.Context, profile *models.TutorProfile) error
	// UpdateProfile rewrites directory fields.
	UpdateProfile(ctx context.Context, profile *models.TutorProfile) error
	// UploadAvatar stores the image and persists its URL on the profile.
	UploadAvatar(ctx context.Context, id, localFilePath string) (string, error)
}

// DefaultTutorService is the production implementation.
type DefaultTutorService struct {
	Repo         tutorRepo.TutorRepository
	Availability availability.AvailabilityService
	Storage      storage.StorageService
}
