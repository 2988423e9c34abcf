package entity

import "time"

// Task is a unit of work owned by a user. UserID references a user record
// owned by the user service; it is enriched over HTTP, never joined locally.
type Task struct {
	TaskID      int64
	Name        string
	Description string
	UserID      string // Owning user in the peer user service; may be empty.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
