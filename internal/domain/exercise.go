package domain

import "time"

// Exercise represents a single logged activity entry tied to one user.
// Date carries a calendar date at UTC midnight; the time portion is never shown.
type Exercise struct {
	ID          string
	OwnerID     string
	Description string
	DurationMin int
	Date        time.Time
}

// LogFilter constrains a user's exercise log. Nil bounds mean no date
// filtering; both bounds are inclusive. Limit <= 0 applies no cap.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
