package note

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/domain"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/repository"
)

// ErrForbidden indicates the note exists but belongs to a different owner.
// Returned only after the existence check, so a missing note is still reported
// as repository.ErrNotFound.
var ErrForbidden = errors.New("note: forbidden")

var (
	errTitleRequired   = errors.New("title is required")
	errContentRequired = errors.New("content is required")
)

// Service implements ownership-checked CRUD over the note store. Every
// operation takes the resolved caller identity explicitly.
type Service struct {
	notes  repository.NoteRepository
	logger *slog.Logger
}

// New returns a note service.
func New(notes repository.NoteRepository, logger *slog.Logger) Service {
	return Service{notes: notes, logger: logger}
}

// List returns the caller's notes, filtered at the store level.
func (s Service) List(ctx context.Context, ownerID int64) ([]domain.Note, error) {
	return s.notes.ListNotesByOwner(ctx, ownerID)
}

// Create stores a new note. The owner is always the authenticated caller,
// regardless of any client-supplied owner field.
func (s Service) Create(ctx context.Context, ownerID int64, title, content string) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, errContentRequired
	}
	note := &domain.Note{Title: title, Content: content, OwnerID: ownerID}
	if err := s.notes.InsertNote(ctx, note); err != nil {
		return nil, err
	}
	s.logger.Info("note created", "note_id", note.ID, "owner_id", ownerID)
	return note, nil
}

// Get returns the note if it exists and is owned by the caller. A note owned
// by someone else yields ErrForbidden, revealing existence before denying
// access.
func (s Service) Get(ctx context.Context, ownerID, id int64) (*domain.Note, error) {
	return s.authorize(ctx, ownerID, id)
}

// Update overwrites title and content wholesale after the same two-stage
// existence and ownership check as Get.
func (s Service) Update(ctx context.Context, ownerID, id int64, title, content string) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, errContentRequired
	}
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return nil, err
	}
	updated, err := s.notes.UpdateNote(ctx, id, title, content)
	if err != nil {
		return nil, err
	}
	s.logger.Info("note updated", "note_id", id, "owner_id", ownerID)
	return updated, nil
}

// Delete removes the note after the two-stage check.
func (s Service) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.notes.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.logger.Info("note deleted", "note_id", id, "owner_id", ownerID)
	return nil
}

// authorize locates the note and compares its owner against the caller.
func (s Service) authorize(ctx context.Context, ownerID, id int64) (*domain.Note, error) {
	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return note, nil
}
