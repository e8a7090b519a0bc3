// File: services/tutor/tutor.go
package tutor

import (
	"context"
	"fmt"
	"time"

	"edspire/models"
	"edspire/utils"

	"go.uber.org/zap"
)

// List decorates every profile with its live availability. A failed status
// lookup degrades that tutor to offline instead of failing the whole page.
func (s *DefaultTutorService) List(ctx context.Context) ([]models.TutorView, error) {
	profiles, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}

	now := time.Now()
	views := make([]models.TutorView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, s.decorate(ctx, p, now))
	}
	return views, nil
}

// GetByID returns one decorated profile.
func (s *DefaultTutorService) GetByID(ctx context.Context, id string) (*models.TutorView, error) {
	profile, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.decorate(ctx, *profile, time.Now())
	return &view, nil
}

// CreateProfile registers a tutor in the directory.
func (s *DefaultTutorService) CreateProfile(ctx context.Context, profile *models.TutorProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("tutor name is required")
	}
	return s.Repo.Create(ctx, profile)
}

// UpdateProfile rewrites directory fields.
func (s *DefaultTutorService) UpdateProfile(ctx context.Context, profile *models.TutorProfile) error {
	return s.Repo.Update(ctx, profile)
}

// UploadAvatar pushes the image to storage and persists the resulting URL.
func (s *DefaultTutorService) UploadAvatar(ctx context.Context, id, localFilePath string) (string, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	url, err := s.Storage.UploadFile(ctx, localFilePath, "avatars")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	if err := s.Repo.SetAvatar(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *DefaultTutorService) decorate(ctx context.Context, p models.TutorProfile, now time.Time) models.TutorView {
	view := models.TutorView{TutorProfile: p, Availability: models.StatusOffline}

	status, err := s.Availability.Status(ctx, p.ID, now)
	if err != nil {
		utils.GetLogger().Warn("tutor status lookup failed",
			zap.String("tutorId", p.ID), zap.Error(err))
		return view
	}
	view.Availability = status.Status
	view.NextAvailable = status.NextAvailable
	return view
}
