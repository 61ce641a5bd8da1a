package models

import "time"

// Photo is a reference to an externally hosted image attached to exactly one
// moodboard. A board holds each URL at most once. Position keeps the order in
// which URLs were submitted.
type Photo struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	URL         string     `json:"url" gorm:"type:varchar(2048);not null;uniqueIndex:idx_board_url,priority:2"`
	MoodboardID string     `json:"moodboard_id" gorm:"type:varchar(36);not null;index;uniqueIndex:idx_board_url,priority:1"`
	Moodboard   *Moodboard `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Position    int        `json:"position" gorm:"not null;default:0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
