package models

import "time"

// Announcement represents a notice pushed to all connected dashboards.
// Immutable once created; only deletion is supported.
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" example:"Water supply maintenance"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
