// File: services/availability/generator_test.go
package availability

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"edspire/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(repo *fakeSlotRepo, now time.Time, seed int64) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo:  repo,
		Clock: func() time.Time { return now },
		Rand:  rand.New(rand.NewSource(seed)),
	}
}

func TestReseedRequiresTutorID(t *testing.T) {
	svc := seededService(newFakeSlotRepo(), time.Now(), 1)

	_, err := svc.Reseed(context.Background(), "", 3, "UTC", "")
	require.ErrorIs(t, err, ErrMissingTutorID)
}

func TestReseedSlotInvariants(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(t, err)

	// Many seeds so constraint violations cannot hide behind one lucky draw.
	for seed := int64(0); seed < 50; seed++ {
		repo := newFakeSlotRepo()
		svc := seededService(repo, now, seed)

		created, err := svc.Reseed(context.Background(), "t1", 8, "Asia/Kuala_Lumpur", "")
		require.NoError(t, err)
		assert.LessOrEqual(t, len(created), 8)

		seen := make(map[string]bool)
		for _, slot := range created {
			assert.True(t, slot.Start.Before(slot.End), "start must precede end")
			assert.True(t, slot.Start.After(now), "start must be in the future")
			assert.Less(t, slot.End.In(loc).Hour(), 23, "slot may not reach the 23:00 hour")
			assert.GreaterOrEqual(t, slot.StudentLimit, 1)
			assert.LessOrEqual(t, slot.StudentLimit, 3)
			assert.NotNil(t, slot.StudentIDs)

			local := slot.Start.In(loc)
			assert.GreaterOrEqual(t, local.Hour(), 8, "start no earlier than 08:00")
			assert.Zero(t, local.Minute()%30, "start on a 30-minute increment")

			dur := slot.End.Sub(slot.Start)
			assert.GreaterOrEqual(t, dur, time.Hour)
			assert.LessOrEqual(t, dur, 3*time.Hour)

			key := slot.Start.String() + slot.End.String()
			assert.False(t, seen[key], "duplicate (start, end) pair")
			seen[key] = true
		}
	}
}

func TestReseedReplacesExistingSchedule(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeSlotRepo()
	repo.slots["t1"] = []models.AvailabilitySlot{
		{ID: "stale", TutorID: "t1", Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},
	}
	svc := seededService(repo, now, 42)

	created, err := svc.Reseed(context.Background(), "t1", 3, "UTC", "")
	require.NoError(t, err)

	for _, slot := range repo.slots["t1"] {
		assert.NotEqual(t, "stale", slot.ID, "old schedule must be wiped")
	}
	assert.Len(t, repo.slots["t1"], len(created))
}

func TestReseedDemoTutorGetsActiveSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeSlotRepo()
	svc := seededService(repo, now, 7)

	created, err := svc.Reseed(context.Background(), "t1", 3, "UTC", "Demo Tutor")
	require.NoError(t, err)
	require.NotEmpty(t, created)

	demo := created[0]
	assert.Equal(t, now, demo.Start)
	assert.Equal(t, now.Add(2*time.Hour), demo.End)
	assert.Equal(t, 3, demo.StudentLimit)

	status, err := svc.Status(context.Background(), "t1", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, status.Status)
}

func TestReseedUnknownNameGetsNoDemoSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeSlotRepo()
	svc := seededService(repo, now, 7)

	created, err := svc.Reseed(context.Background(), "t1", 3, "UTC", "Somebody Else")
	require.NoError(t, err)

	for _, slot := range created {
		assert.True(t, slot.Start.After(now), "no slot should span the reseed instant")
	}
}

func TestReseedSkipsFailedWrites(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeSlotRepo()
	repo.createErr = errors.New("write refused")
	svc := seededService(repo, now, 7)

	created, err := svc.Reseed(context.Background(), "t1", 3, "UTC", "")
	require.NoError(t, err, "per-slot failures must not abort the run")
	assert.Empty(t, created)
}

func TestReseedZeroCount(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeSlotRepo()
	svc := seededService(repo, now, 7)

	created, err := svc.Reseed(context.Background(), "t1", 0, "UTC", "")
	require.NoError(t, err)
	assert.Empty(t, created)
}
