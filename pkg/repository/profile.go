package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsense/pkg/domain"
)

// ProfileRepository handles user profiles
type ProfileRepository struct {
	db *sqlx.DB
}

type profileSQL struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// EnsureProfile returns the profile of the user, creating it on first use.
// Name defaults to email when the user has no name.
func (r *ProfileRepository) EnsureProfile(ctx context.Context, user domain.User) (*domain.Profile, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("empty user id")
	}
	name := user.Name
	if name == "" {
		name = user.Email
	}

	err := retry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO profiles (id, email, name, created_at) VALUES (?, ?, ?, ?) ON CONFLICT(id) DO NOTHING`,
			user.ID, user.Email, name, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ensure profile %s: %w", user.ID, err)
	}
	return r.Get(ctx, user.ID)
}

// Get returns profile by id
func (r *ProfileRepository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	var p profileSQL
	if err := r.db.GetContext(ctx, &p, `SELECT id, email, name, created_at FROM profiles WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}
	return &domain.Profile{ID: p.ID, Email: p.Email, Name: p.Name, CreatedAt: p.CreatedAt}, nil
}
