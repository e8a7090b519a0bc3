package models

// TutorProfile is the directory entry shown to students.
type TutorProfile struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Avatar      string   `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Subjects    []string `bson:"subjects" json:"subjects"`
	Rating      float64  `bson:"rating" json:"rating"`
	ReviewCount int      `bson:"reviewCount" json:"reviewCount"`
	HourlyRate  float64  `bson:"hourlyRate" json:"hourlyRate"`
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`
}

// DefaultTutorRating is applied when a profile is created without reviews.
const DefaultTutorRating = 4.8

// TutorView decorates a profile with its live availability, computed per
// query and never stored.
type TutorView struct {
	TutorProfile  `bson:",inline"`
	Availability  string `json:"availability"`
	NextAvailable string `json:"nextAvailable,omitempty"`
}
