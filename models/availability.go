package models

import "time"

// Tutor presence states derived from the availability schedule.
const (
	StatusAvailable = "available"
	StatusBusy      = "busy"
	StatusOffline   = "offline"
)

// AvailabilitySlot is one time-bounded window in a tutor's schedule.
// Start must precede End. Timezone is kept for display only; all comparisons
// run on the absolute timestamps. The studentIds/studentLimit relationship is
// enforced by the booking layer, not here.
type AvailabilitySlot struct {
	ID           string    `bson:"id" json:"id"`
	TutorID      string    `bson:"tutorId" json:"tutorId"`
	Start        time.Time `bson:"start" json:"start"`
	End          time.Time `bson:"end" json:"end"`
	Timezone     string    `bson:"tz" json:"tz"`
	Note         string    `bson:"note,omitempty" json:"note,omitempty"`
	StudentLimit int       `bson:"studentLimit" json:"studentLimit"`
	StudentIDs   []string  `bson:"studentIds" json:"studentIds"`
}

// TutorStatus is the live availability projection for a tutor.
type TutorStatus struct {
	Status        string `json:"status"`
	NextAvailable string `json:"nextAvailable,omitempty"`
}
