package models

// DefaultMoods is the fixed vocabulary seeded into the moods table.
var DefaultMoods = []string{
	"Happy",
	"Sad",
	"Calm",
	"Energetic",
	"Romantic",
	"Nostalgic",
	"Dreamy",
	"Dark",
}

// Mood is a tag applied to a moodboard. Rows are seeded once and never
// written by the application afterwards.
type Mood struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(255);not null"`
}
