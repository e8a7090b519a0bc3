// File: services/availability/interface.go
package availability

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	availabilityRepo "edspire/database/repository/availability"
	"edspire/models"
)

// ErrMissingTutorID is rejected before any store access.
var ErrMissingTutorID = errors.New("tutor id is required")

// AvailabilityService projects live tutor status from the slot schedule and
// reseeds synthetic schedules.
type AvailabilityService interface {
	// Status reports available/busy/offline for the tutor at the reference
	// instant, with a display string for the next slot when busy.
	Status(ctx context.Context, tutorID string, at time.Time) (*models.TutorStatus, error)
	// Upcoming returns the tutor's not-yet-ended slots, end-ascending.
	Upcoming(ctx context.Context, tutorID string) ([]models.AvailabilitySlot, error)
	// Reseed destructively replaces the tutor's schedule with a synthetic
	// one and returns the created slots. The delete and the inserts are not
	// transactional: a failure mid-way leaves a partial schedule.
	Reseed(ctx context.Context, tutorID string, count int, tz, tutorName string) ([]models.AvailabilitySlot, error)
}

// DefaultAvailabilityService is the production implementation. Clock and Rand
// default to the wall clock and a time-seeded source; tests override them.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.SlotRepository
	Clock func() time.Time
	Rand  *rand.Rand

	mu sync.Mutex
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) random() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}
