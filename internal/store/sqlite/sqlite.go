package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/vovakirdan/tour-of-heroes/internal/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies pending migrations.
// dbPath is the path to the SQLite database file, or ":memory:".
func New(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection; it also keeps ":memory:" alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	_, err = provider.Up(ctx)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListHeroes returns every hero ordered by id.
func (s *SQLiteStore) ListHeroes(ctx context.Context) ([]*store.Hero, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM heroes
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query heroes: %w", err)
	}
	defer rows.Close()

	return scanHeroes(rows)
}

// GetHero retrieves a hero by ID.
func (s *SQLiteStore) GetHero(ctx context.Context, id int64) (*store.Hero, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM heroes
		WHERE id = ?
	`
	var hero store.Hero
	err := s.db.QueryRowContext(ctx, query, id).Scan(&hero.ID, &hero.Name, &hero.CreatedAt, &hero.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("hero %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("query hero: %w", err)
	}

	return &hero, nil
}

// SearchHeroes returns heroes whose name contains term.
// SQLite LIKE is case-insensitive for ASCII.
func (s *SQLiteStore) SearchHeroes(ctx context.Context, term string) ([]*store.Hero, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM heroes
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search heroes: %w", err)
	}
	defer rows.Close()

	return scanHeroes(rows)
}

// CreateHero inserts a hero and returns it with its assigned ID.
func (s *SQLiteStore) CreateHero(ctx context.Context, name string) (*store.Hero, error) {
	result, err := s.db.ExecContext(ctx, `INSERT INTO heroes (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("insert hero: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return s.GetHero(ctx, id)
}

// UpdateHero renames an existing hero.
func (s *SQLiteStore) UpdateHero(ctx context.Context, id int64, name string) error {
	query := `
		UPDATE heroes
		SET name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("update hero: %w", err)
	}

	return requireAffected(result, id)
}

// DeleteHero removes a hero.
func (s *SQLiteStore) DeleteHero(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM heroes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}

	return requireAffected(result, id)
}

// CountHeroes returns the number of stored heroes.
func (s *SQLiteStore) CountHeroes(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM heroes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count heroes: %w", err)
	}
	return n, nil
}

// SeedHeroes inserts heroes with their given IDs in one transaction.
func (s *SQLiteStore) SeedHeroes(ctx context.Context, heroes []store.Hero) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO heroes (id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, h := range heroes {
		if _, err := stmt.ExecContext(ctx, h.ID, h.Name); err != nil {
			return fmt.Errorf("seed hero %d: %w", h.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func scanHeroes(rows *sql.Rows) ([]*store.Hero, error) {
	heroes := make([]*store.Hero, 0)
	for rows.Next() {
		var hero store.Hero
		if err := rows.Scan(&hero.ID, &hero.Name, &hero.CreatedAt, &hero.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		heroes = append(heroes, &hero)
	}

	return heroes, rows.Err()
}

func requireAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("hero %d: %w", id, store.ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
