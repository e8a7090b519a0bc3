package models

import "time"

// Session statuses.
const (
	SessionScheduled = "scheduled"
	SessionCancelled = "cancelled"
)

// Session is a booked tutoring session backed by an availability slot.
// Room is the video-conference room name handed to the embed on both sides.
type Session struct {
	ID        string    `bson:"id" json:"id"`
	SlotID    string    `bson:"slotId" json:"slotId"`
	TutorID   string    `bson:"tutorId" json:"tutorId"`
	StudentID string    `bson:"studentId" json:"studentId"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Timezone  string    `bson:"tz" json:"tz"`
	Room      string    `bson:"room" json:"room"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task body for session reminders.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
