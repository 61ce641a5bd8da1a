package models

import "time"

// Moodboard is a titled collection of photos owned by one user and tagged
// with one mood. Photos are not a gorm association: they are loaded through
// the photo repository and attached for responses only.
type Moodboard struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	User        *User     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	MoodID      string    `json:"mood_id" gorm:"type:varchar(36);not null;index"`
	Mood        *Mood     `json:"mood,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Photos      []Photo   `json:"photos" gorm:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PhotoURLs returns the URLs of the attached photos in their current order.
func (m *Moodboard) PhotoURLs() []string {
	urls := make([]string, 0, len(m.Photos))
	for _, p := range m.Photos {
		urls = append(urls, p.URL)
	}
	return urls
}

// MoodboardSummary is the list view of a board: no photos, just a count.
type MoodboardSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	MoodName    string `json:"mood"`
	PhotoCount  int64  `json:"photo_count"`
}
