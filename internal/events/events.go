// Package events defines the payloads emitted when records are accepted.
package events

import "time"

// Topics the producer writes to.
const (
	TopicUserEvents     = "user_events"
	TopicExerciseEvents = "exercise_events"
)

// UserCreated is emitted when a new user record is persisted.
type UserCreated struct {
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ExerciseLogged is emitted when an exercise entry is persisted.
type ExerciseLogged struct {
	EventID     string    `json:"event_id"`
	ExerciseID  string    `json:"exercise_id"`
	OwnerID     string    `json:"owner_id"`
	Description string    `json:"description"`
	DurationMin int       `json:"duration_min"`
	Date        time.Time `json:"date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
