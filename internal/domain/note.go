package domain

import "time"

// Note is a text record owned by exactly one user. OwnerID is immutable after
// creation; UpdatedAt is refreshed on every mutation.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
