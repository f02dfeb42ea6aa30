// Package profile persists onboarding survey profiles in sqlite, replacing
// the flat-file store the original assistant proxy used.
package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rickeychiu/budgeteer/internal/core"

	_ "modernc.org/sqlite"
)

// Store is a sqlite-backed profile repository keyed by the identity
// provider's user id.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database at dbPath and applies
// pending migrations.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the stored profile for userID, or ErrProfileNotFound.
func (s *Store) Get(ctx context.Context, userID string) (core.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, email, goals, focus_categories, nudges, time_horizon, updated_at
		FROM profiles WHERE user_id = ?`, userID)

	var (
		p                    core.Profile
		goals, focus, nudges string
	)
	err := row.Scan(&p.UserID, &p.Email, &goals, &focus, &nudges, &p.Survey.TimeHorizon, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Profile{}, core.ErrProfileNotFound
	}
	if err != nil {
		return core.Profile{}, fmt.Errorf("query profile: %w", err)
	}

	if err := decodeList(goals, &p.Survey.Goals); err != nil {
		return core.Profile{}, err
	}
	if err := decodeList(focus, &p.Survey.FocusCategories); err != nil {
		return core.Profile{}, err
	}
	if err := decodeList(nudges, &p.Survey.Nudges); err != nil {
		return core.Profile{}, err
	}

	return p, nil
}

// Upsert inserts or replaces the profile for its user id.
func (s *Store) Upsert(ctx context.Context, p core.Profile) error {
	if p.UserID == "" {
		return errors.New("profile missing user id")
	}

	goals, err := encodeList(p.Survey.Goals)
	if err != nil {
		return err
	}
	focus, err := encodeList(p.Survey.FocusCategories)
	if err != nil {
		return err
	}
	nudges, err := encodeList(p.Survey.Nudges)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, email, goals, focus_categories, nudges, time_horizon, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			email = excluded.email,
			goals = excluded.goals,
			focus_categories = excluded.focus_categories,
			nudges = excluded.nudges,
			time_horizon = excluded.time_horizon,
			updated_at = excluded.updated_at`,
		p.UserID, p.Email, goals, focus, nudges, p.Survey.TimeHorizon, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(s string, out *[]string) error {
	if s == "" {
		*out = []string{}
		return nil
	}
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("decode list: %w", err)
	}
	return nil
}
