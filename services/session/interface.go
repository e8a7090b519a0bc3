package session

import (
	"context"
	"errors"

	availabilityRepo "edspire/database/repository/availability"
	sessionRepo "edspire/database/repository/session"
	"edspire/models"

	"github.com/hibiken/asynq"
)

var (
	// ErrNotParticipant rejects actions on a session the caller isn't part of.
	ErrNotParticipant = errors.New("not a participant of this session")
	// ErrSlotInPast rejects booking a slot that already ended.
	ErrSlotInPast = errors.New("slot has already ended")
)

// SessionService books availability slots into live tutoring sessions.
type SessionService interface {
	// Book enrolls the student into the slot (capacity-guarded) and creates
	// the session record with its video room.
	Book(ctx context.Context, studentID, tutorID, slotID string) (*models.Session, error)
	// ListUpcoming returns the caller's scheduled sessions.
	ListUpcoming(ctx context.Context, userID string) ([]models.Session, error)
	// Cancel marks a session cancelled; only participants may cancel.
	Cancel(ctx context.Context, userID, sessionID string) error
}

// DefaultSessionService is the production implementation. Reminders is
// optional; when nil, bookings simply go unreminded.
type DefaultSessionService struct {
	Sessions  sessionRepo.SessionRepository
	Slots     availabilityRepo.SlotRepository
	Reminders *asynq.Client
}
