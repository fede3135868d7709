package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/domain"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/repository"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/pkg/crypto"
)

type stubUserRepository struct {
	nextID  int64
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
	}
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if _, exists := s.byEmail[user.Email]; exists {
		return repository.ErrConflict
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	stored := *user
	s.byEmail[user.Email] = &stored
	s.byID[user.ID] = &stored
	return nil
}

func (s *stubUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	if user, ok := s.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := s.byEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepository) DeleteUser(ctx context.Context, id int64) error {
	user, ok := s.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	delete(s.byEmail, user.Email)
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newStubUserRepository()
	svc := New(repo, newLogger())

	created, err := svc.Register(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if string(created.PasswordHash) == "s3cret" {
		t.Fatal("plaintext password was stored")
	}
	if err := crypto.ComparePassword(created.PasswordHash, "s3cret"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDistinctEmailsGetUniqueIDs(t *testing.T) {
	repo := newStubUserRepository()
	svc := New(repo, newLogger())

	first, err := svc.Register(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("register first: %v", err)
	}
	second, err := svc.Register(context.Background(), "b@example.com", "pw")
	if err != nil {
		t.Fatalf("register second: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("ids not unique: %d", first.ID)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newStubUserRepository()
	svc := New(repo, newLogger())

	if _, err := svc.Register(context.Background(), "alice@example.com", "pw"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice@example.com", "other"); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly one row for the email, got %d", len(repo.byEmail))
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := New(newStubUserRepository(), newLogger())

	if _, err := svc.Register(context.Background(), "  ", "pw"); !errors.Is(err, errEmailRequired) {
		t.Fatalf("expected errEmailRequired, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice@example.com", ""); !errors.Is(err, errPasswordRequired) {
		t.Fatalf("expected errPasswordRequired, got %v", err)
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc := New(newStubUserRepository(), newLogger())
	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
