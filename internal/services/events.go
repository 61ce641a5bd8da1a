package services

import (
	"context"
	"encoding/json"
	"time"

	"moodboard/internal/models"
)

// Routing keys of the moodboard lifecycle events.
const (
	EventMoodboardCreated = "moodboard.created"
	EventMoodboardUpdated = "moodboard.updated"
	EventMoodboardDeleted = "moodboard.deleted"
)

// EventPublisher delivers lifecycle events to a broker. *rabbitmq.Client
// satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// MoodboardEvent is the JSON body of a lifecycle event.
type MoodboardEvent struct {
	Type        string    `json:"type"`
	MoodboardID string    `json:"moodboard_id"`
	OwnerID     string    `json:"owner_id"`
	Mood        string    `json:"mood,omitempty"`
	PhotoCount  int       `json:"photo_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newMoodboardEvent(eventType string, board *models.Moodboard) MoodboardEvent {
	event := MoodboardEvent{
		Type:        eventType,
		MoodboardID: board.ID,
		OwnerID:     board.UserID,
		PhotoCount:  len(board.Photos),
		OccurredAt:  time.Now().UTC(),
	}
	if board.Mood != nil {
		event.Mood = board.Mood.Name
	}
	return event
}

// publish is best effort: the write has already committed, so a broker
// failure is logged and swallowed.
func (s *MoodboardService) publish(ctx context.Context, eventType string, board *models.Moodboard) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(newMoodboardEvent(eventType, board))
	if err != nil {
		s.logger.Warnw("failed to marshal moodboard event", "type", eventType, "moodboard_id", board.ID, "error", err)
		return
	}
	if err := s.events.Publish(ctx, eventType, body); err != nil {
		s.logger.Warnw("failed to publish moodboard event", "type", eventType, "moodboard_id", board.ID, "error", err)
	}
}
