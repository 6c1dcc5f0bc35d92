package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Hero represents a persisted hero.
type Hero struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HeroStore handles hero persistence.
type HeroStore interface {
	// ListHeroes returns every hero ordered by id.
	ListHeroes(ctx context.Context) ([]*Hero, error)

	// GetHero retrieves a hero by ID. Returns ErrNotFound if missing.
	GetHero(ctx context.Context, id int64) (*Hero, error)

	// SearchHeroes returns heroes whose name contains term, case-insensitively.
	SearchHeroes(ctx context.Context, term string) ([]*Hero, error)

	// CreateHero inserts a hero and returns it with its assigned ID.
	CreateHero(ctx context.Context, name string) (*Hero, error)

	// UpdateHero renames an existing hero. Returns ErrNotFound if missing.
	UpdateHero(ctx context.Context, id int64, name string) error

	// DeleteHero removes a hero. Returns ErrNotFound if missing.
	DeleteHero(ctx context.Context, id int64) error

	// CountHeroes returns the number of stored heroes.
	CountHeroes(ctx context.Context) (int, error)

	// SeedHeroes inserts heroes with their given IDs.
	SeedHeroes(ctx context.Context, heroes []Hero) error
}

// Store aggregates all storage interfaces.
type Store interface {
	HeroStore

	// Close closes the underlying database connection.
	Close() error
}
