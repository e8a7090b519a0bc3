// File: services/availability/generator.go
package availability

import (
	"context"
	"fmt"
	"time"

	"edspire/models"
	"edspire/utils"

	"go.uber.org/zap"
)

const (
	// Candidate slots land within a rolling 3-week window from today.
	seedWindowDays = 21
	// Weekend candidates survive sampling with this probability.
	weekendKeepProbability = 0.7
	// Start times run 08:00-20:00 on 30-minute increments (25 choices).
	earliestStartHour = 8
	startChoices      = 25
	// Durations are 1-3 whole hours; no slot may run into the 23:00 hour.
	maxDurationHours = 3
	latestEndHour    = 23
	// Attempts per slot before it is skipped. Skips are silent: the caller
	// may receive fewer slots than requested.
	maxSlotAttempts = 10

	demoSlotDuration = 2 * time.Hour
	maxStudentLimit  = 3
)

// alwaysAvailableTutors are demo accounts that must always show an active
// slot right after a reseed, keyed by display name.
var alwaysAvailableTutors = map[string]bool{
	"Aisyah Rahman":    true,
	"Dr. Lim Wei Ming": true,
	"Demo Tutor":       true,
}

// Reseed wipes the tutor's schedule and generates a fresh pseudo-random one.
// Every slot write is independent: individual failures are logged and skipped
// so one bad write never aborts the run.
func (s *DefaultAvailabilityService) Reseed(ctx context.Context, tutorID string, count int, tz, tutorName string) ([]models.AvailabilitySlot, error) {
	if tutorID == "" {
		return nil, ErrMissingTutorID
	}
	logger := utils.GetLogger()

	if _, err := s.Repo.DeleteByTutorID(ctx, tutorID); err != nil {
		return nil, fmt.Errorf("failed to clear existing schedule: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	loc := locationOrUTC(tz)
	seen := make(map[string]bool)
	created := make([]models.AvailabilitySlot, 0, count+1)

	if alwaysAvailableTutors[tutorName] {
		slot := models.AvailabilitySlot{
			TutorID:      tutorID,
			Start:        now,
			End:          now.Add(demoSlotDuration),
			Timezone:     tz,
			Note:         "Drop-in hours",
			StudentLimit: maxStudentLimit,
			StudentIDs:   []string{},
		}
		seen[slotKey(slot.Start, slot.End)] = true
		if _, err := s.Repo.Create(ctx, &slot); err != nil {
			logger.Warn("skipping demo slot write",
				zap.String("tutorId", tutorID), zap.Error(err))
		} else {
			created = append(created, slot)
		}
	}

	for i := 0; i < count; i++ {
		slot, ok := s.sampleSlot(now, loc, seen)
		if !ok {
			continue
		}
		slot.TutorID = tutorID
		slot.Timezone = tz
		slot.Note = "Open session"
		slot.StudentLimit = 1 + s.random().Intn(maxStudentLimit)
		slot.StudentIDs = []string{}

		if _, err := s.Repo.Create(ctx, &slot); err != nil {
			logger.Warn("skipping slot write",
				zap.String("tutorId", tutorID),
				zap.Time("start", slot.Start), zap.Error(err))
			continue
		}
		created = append(created, slot)
	}

	logger.Info("reseeded tutor schedule",
		zap.String("tutorId", tutorID),
		zap.Int("requested", count), zap.Int("created", len(created)))
	return created, nil
}

// sampleSlot draws candidates until one clears every constraint: start
// strictly in the future, end before the 23:00 hour, and a (start, end) pair
// not produced earlier in this run. Only exact pairs are deduplicated;
// overlapping slots are allowed and a tutor may hold concurrent slots up to
// each one's studentLimit.
func (s *DefaultAvailabilityService) sampleSlot(now time.Time, loc *time.Location, seen map[string]bool) (models.AvailabilitySlot, bool) {
	rng := s.random()
	today := now.In(loc)
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	for attempt := 0; attempt < maxSlotAttempts; attempt++ {
		day := midnight.AddDate(0, 0, rng.Intn(seedWindowDays))
		if isWeekend(day) && rng.Float64() > weekendKeepProbability {
			continue
		}

		start := day.Add(time.Duration(earliestStartHour)*time.Hour +
			time.Duration(rng.Intn(startChoices))*30*time.Minute)
		end := start.Add(time.Duration(1+rng.Intn(maxDurationHours)) * time.Hour)

		if !start.After(now) {
			continue
		}
		if end.In(loc).Hour() >= latestEndHour {
			continue
		}
		key := slotKey(start, end)
		if seen[key] {
			continue
		}
		seen[key] = true
		return models.AvailabilitySlot{Start: start, End: end}, true
	}
	return models.AvailabilitySlot{}, false
}

func slotKey(start, end time.Time) string {
	return fmt.Sprintf("%d_%d", start.Unix(), end.Unix())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func locationOrUTC(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
