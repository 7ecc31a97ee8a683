// Package prefs persists the reader's display preferences.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/docbrowser/internal/db"
)

// Theme is the colour scheme of the shell.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when nothing valid is stored.
const DefaultTheme = ThemeLight

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

const themeKey = "theme"

// Store reads and writes preferences in the preferences table.
type Store struct {
	db *db.DB
}

// NewStore returns a Store over an opened database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Theme returns the stored theme, or DefaultTheme when none is stored or the
// stored value is not recognised.
func (s *Store) Theme(ctx context.Context) (Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, themeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultTheme, nil
	}
	if err != nil {
		return DefaultTheme, fmt.Errorf("reading theme: %w", err)
	}
	if t := Theme(value); t.Valid() {
		return t, nil
	}
	return DefaultTheme, nil
}

// SetTheme persists t.
func (s *Store) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q: must be light or dark", t)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		themeKey, string(t))
	if err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the stored theme, persists it and returns the new value.
func (s *Store) ToggleTheme(ctx context.Context) (Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggled()
	if err := s.SetTheme(ctx, next); err != nil {
		return current, err
	}
	return next, nil
}
