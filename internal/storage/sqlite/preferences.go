package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/storage"
	"github.com/louisbranch/gmscreen/internal/storage/sqlite/migrations"
)

// PreferencesStore persists device preferences.
type PreferencesStore struct {
	sqlDB *sql.DB
}

// OpenPreferences opens and migrates a preferences database.
func OpenPreferences(ctx context.Context, path string) (*PreferencesStore, error) {
	sqlDB, err := openDB(ctx, path, migrations.PreferencesRoot)
	if err != nil {
		return nil, err
	}
	return &PreferencesStore{sqlDB: sqlDB}, nil
}

// Close releases the underlying connection.
func (s *PreferencesStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetPreferences loads preferences for deviceID. Stored values that are no
// longer supported are normalized to defaults.
func (s *PreferencesStore) GetPreferences(ctx context.Context, deviceID string) (preferences.Preferences, error) {
	if s == nil || s.sqlDB == nil {
		return preferences.Preferences{}, fmt.Errorf("storage is not configured")
	}
	var (
		theme, fontSize     string
		reduceMotion, sound int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT theme, font_size, reduce_motion, sound FROM device_preferences WHERE device_id = ?`,
		strings.TrimSpace(deviceID),
	).Scan(&theme, &fontSize, &reduceMotion, &sound)
	if errors.Is(err, sql.ErrNoRows) {
		return preferences.Preferences{}, storage.ErrNotFound
	}
	if err != nil {
		return preferences.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return preferences.Preferences{
		Theme:        preferences.Theme(theme),
		FontSize:     preferences.FontSize(fontSize),
		ReduceMotion: reduceMotion != 0,
		Sound:        sound != 0,
	}.Normalize(), nil
}

// PutPreferences validates and upserts preferences for deviceID.
func (s *PreferencesStore) PutPreferences(ctx context.Context, deviceID string, prefs preferences.Preferences) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return fmt.Errorf("device id is required")
	}
	if err := prefs.Validate(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO device_preferences (device_id, theme, font_size, reduce_motion, sound, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(device_id) DO UPDATE SET
		    theme = excluded.theme,
		    font_size = excluded.font_size,
		    reduce_motion = excluded.reduce_motion,
		    sound = excluded.sound,
		    updated_at = excluded.updated_at`,
		deviceID, string(prefs.Theme), string(prefs.FontSize),
		boolToInt(prefs.ReduceMotion), boolToInt(prefs.Sound), nowMillis(),
	); err != nil {
		return fmt.Errorf("put preferences: %w", err)
	}
	return nil
}

var _ storage.PreferencesStore = (*PreferencesStore)(nil)
