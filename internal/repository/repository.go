package repository

import (
	"context"

	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user and fills in the assigned ID and CreatedAt.
	// Returns ErrConflict when the email is already registered.
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// DeleteUser removes the account; owned notes are cascade-deleted by the
	// store. Administrative path only.
	DeleteUser(ctx context.Context, id int64) error
}

// NoteRepository persists notes.
type NoteRepository interface {
	// InsertNote stores the note and fills in the assigned ID, CreatedAt and
	// UpdatedAt.
	InsertNote(ctx context.Context, note *domain.Note) error
	ListNotesByOwner(ctx context.Context, ownerID int64) ([]domain.Note, error)
	GetNote(ctx context.Context, id int64) (*domain.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string) (*domain.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}
