// File: services/availability/availability_test.go
package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	availabilityRepo "edspire/database/repository/availability"
	"edspire/models"
)

// fakeSlotRepo is an in-memory SlotRepository for service tests.
type fakeSlotRepo struct {
	slots     map[string][]models.AvailabilitySlot
	nextID    int
	createErr error
}

var _ availabilityRepo.SlotRepository = (*fakeSlotRepo)(nil)

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string][]models.AvailabilitySlot)}
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *models.AvailabilitySlot) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if slot.ID == "" {
		f.nextID++
		slot.ID = fmt.Sprintf("slot-%d", f.nextID)
	}
	f.slots[slot.TutorID] = append(f.slots[slot.TutorID], *slot)
	return slot.ID, nil
}

func (f *fakeSlotRepo) DeleteByTutorID(_ context.Context, tutorID string) (int64, error) {
	n := int64(len(f.slots[tutorID]))
	delete(f.slots, tutorID)
	return n, nil
}

func (f *fakeSlotRepo) GetUpcoming(_ context.Context, tutorID string, at time.Time) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range f.slots[tutorID] {
		if !s.End.Before(at) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].End.Before(out[j].End) })
	return out, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, tutorID, slotID string) (*models.AvailabilitySlot, error) {
	for _, s := range f.slots[tutorID] {
		if s.ID == slotID {
			out := s
			return &out, nil
		}
	}
	return nil, availabilityRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) TryEnroll(_ context.Context, tutorID, slotID, studentID string) error {
	for i, s := range f.slots[tutorID] {
		if s.ID != slotID {
			continue
		}
		for _, id := range s.StudentIDs {
			if id == studentID {
				return nil
			}
		}
		if len(s.StudentIDs) >= s.StudentLimit {
			return availabilityRepo.ErrSlotFull
		}
		f.slots[tutorID][i].StudentIDs = append(s.StudentIDs, studentID)
		return nil
	}
	return availabilityRepo.ErrSlotNotFound
}

func (f *fakeSlotRepo) EnsureIndexes(_ context.Context) error { return nil }
