package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// EventStats are derived rollups recomputed from the participants table on
// demand. They are eventually-consistent snapshots, never authoritative
// counts.
type EventStats struct {
	TotalInvited     int `json:"total_invited"`
	TotalCheckedIn   int `json:"total_checked_in"`
	TotalShortlisted int `json:"total_shortlisted"`
}

type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EventDate   time.Time   `json:"event_date"`
	EventTime   string      `json:"event_time"`
	Venue       string      `json:"venue"`
	CoverImage  string      `json:"cover_image,omitempty"`
	Status      EventStatus `json:"status"`
	Stats       EventStats  `json:"stats"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateEventInput struct {
	Name        string
	Description string
	EventDate   time.Time
	EventTime   string
	Venue       string
	CoverImage  string
}
