// File: services/session/session.go
package session

import (
	"context"
	"fmt"
	"time"

	"edspire/models"
	"edspire/services/tasks"
	"edspire/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before start the push fires.
const reminderLead = 15 * time.Minute

// Book enrolls the student through the slot's capacity guard, then records
// the session with a video room name both sides hand to the embed.
func (s *DefaultSessionService) Book(ctx context.Context, studentID, tutorID, slotID string) (*models.Session, error) {
	slot, err := s.Slots.GetByID(ctx, tutorID, slotID)
	if err != nil {
		return nil, err
	}
	if slot.End.Before(time.Now()) {
		return nil, ErrSlotInPast
	}

	if err := s.Slots.TryEnroll(ctx, tutorID, slotID, studentID); err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		SlotID:    slot.ID,
		TutorID:   tutorID,
		StudentID: studentID,
		Start:     slot.Start,
		End:       slot.End,
		Timezone:  slot.Timezone,
		Room:      roomName(slot.ID),
		Status:    models.SessionScheduled,
	}
	if _, err := s.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	s.scheduleReminder(session)
	return session, nil
}

// ListUpcoming returns the caller's scheduled sessions, start-ascending.
func (s *DefaultSessionService) ListUpcoming(ctx context.Context, userID string) ([]models.Session, error) {
	return s.Sessions.ListUpcoming(ctx, userID, time.Now())
}

// Cancel marks a session cancelled. The slot enrollment is left as-is: the
// tutor keeps the window open for walk-ins.
func (s *DefaultSessionService) Cancel(ctx context.Context, userID, sessionID string) error {
	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.StudentID != userID && session.TutorID != userID {
		return ErrNotParticipant
	}
	return s.Sessions.SetStatus(ctx, sessionID, models.SessionCancelled)
}

// scheduleReminder enqueues the pre-session push for both participants.
// Reminder failures never fail the booking.
func (s *DefaultSessionService) scheduleReminder(session *models.Session) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()
	fireAt := session.Start.Add(-reminderLead)

	for _, userID := range []string{session.StudentID, session.TutorID} {
		payload := models.ReminderPayload{
			SessionID: session.ID,
			UserID:    userID,
			Title:     "Upcoming tutoring session",
			Body:      "Your session starts in 15 minutes.",
			FireDate:  fireAt.Format(time.RFC3339),
		}
		task, opts, err := tasks.NewReminderTask(payload, fireAt)
		if err != nil {
			logger.Warn("failed to build reminder task",
				zap.String("sessionId", session.ID), zap.Error(err))
			continue
		}
		if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
			logger.Warn("failed to enqueue reminder",
				zap.String("sessionId", session.ID), zap.Error(err))
		}
	}
}

func roomName(slotID string) string {
	suffix := slotID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return "edspire-" + suffix + "-" + uuid.New().String()[:8]
}
