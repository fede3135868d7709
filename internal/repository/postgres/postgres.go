package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/domain"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/repository"
)

// uniqueViolation is the Postgres error code raised by the unique index on
// users.email.
const uniqueViolation = "23505"

// Repository implements persistence interfaces on PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// New constructs a Repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ensure Repository satisfies interfaces.
var (
	_ repository.UserRepository = (*Repository)(nil)
	_ repository.NoteRepository = (*Repository)(nil)
)

// CreateUser inserts a user, assigning id and created_at server-side.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	const query = `INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

// GetUserByID retrieves a user by identifier.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail fetches a user by email.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`
	row := r.pool.QueryRow(ctx, query, email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user row. Notes referencing the user are removed by the
// ON DELETE CASCADE constraint.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// InsertNote stores a note, assigning id and timestamps server-side.
func (r *Repository) InsertNote(ctx context.Context, note *domain.Note) error {
	const query = `INSERT INTO notes (title, content, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, note.Title, note.Content, note.OwnerID).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
}

// ListNotesByOwner returns notes belonging to the owner in insertion order.
func (r *Repository) ListNotesByOwner(ctx context.Context, ownerID int64) ([]domain.Note, error) {
	const query = `SELECT id, title, content, owner_id, created_at, updated_at
		FROM notes WHERE owner_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// GetNote fetches a note by identifier.
func (r *Repository) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	const query = `SELECT id, title, content, owner_id, created_at, updated_at
		FROM notes WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	var n domain.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// UpdateNote overwrites title and content wholesale and refreshes updated_at.
func (r *Repository) UpdateNote(ctx context.Context, id int64, title, content string) (*domain.Note, error) {
	const query = `UPDATE notes
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, content, owner_id, created_at, updated_at`
	row := r.pool.QueryRow(ctx, query, id, title, content)
	var n domain.Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// DeleteNote removes a note row.
func (r *Repository) DeleteNote(ctx context.Context, id int64) error {
	const query = `DELETE FROM notes WHERE id = $1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
