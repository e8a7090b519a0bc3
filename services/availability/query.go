// File: services/availability/query.go
package availability

import (
	"context"
	"fmt"
	"time"

	"edspire/models"
)

// nextAvailableFormat renders slot starts for the "next available" display.
const nextAvailableFormat = "Jan 2, 3:04 PM"

// Status scans the tutor's non-expired slots and projects a live status.
// Busy tutors report the slot with the earliest start as next available,
// even though slots arrive end-ordered; that earliest-start choice mirrors
// what the dashboard has always shown.
func (s *DefaultAvailabilityService) Status(ctx context.Context, tutorID string, at time.Time) (*models.TutorStatus, error) {
	if tutorID == "" {
		return nil, ErrMissingTutorID
	}

	slots, err := s.Repo.GetUpcoming(ctx, tutorID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	var next *models.AvailabilitySlot
	for i := range slots {
		slot := &slots[i]
		if !slot.Start.After(at) && !slot.End.Before(at) {
			return &models.TutorStatus{Status: models.StatusAvailable}, nil
		}
		if next == nil || slot.Start.Before(next.Start) {
			next = slot
		}
	}

	if next != nil {
		return &models.TutorStatus{
			Status:        models.StatusBusy,
			NextAvailable: formatSlotStart(next),
		}, nil
	}
	return &models.TutorStatus{Status: models.StatusOffline}, nil
}

// Upcoming returns the raw not-yet-ended slots for the tutor.
func (s *DefaultAvailabilityService) Upcoming(ctx context.Context, tutorID string) ([]models.AvailabilitySlot, error) {
	if tutorID == "" {
		return nil, ErrMissingTutorID
	}
	return s.Repo.GetUpcoming(ctx, tutorID, s.now())
}

// formatSlotStart renders the start instant in the slot's own timezone. The
// tz string is display-only; a bad zone falls back to UTC.
func formatSlotStart(slot *models.AvailabilitySlot) string {
	loc, err := time.LoadLocation(slot.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return slot.Start.In(loc).Format(nextAvailableFormat)
}
