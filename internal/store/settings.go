package store

import (
	"database/sql"
	"errors"
	"strconv"
	"time"
)

// Recognized setting keys.
const (
	KeyHoldTime     = "hold_time"     // seconds of continuous hold before confirming
	KeyHistoryLimit = "history_limit" // entries returned by history retrieval
	KeyCameraID     = "camera_id"     // capture device, applied on next start
)

// Setting defaults.
const (
	DefaultHoldTime     = 3 * time.Second
	DefaultHistoryLimit = 5
	DefaultCameraID     = 0
)

// SettingsRepository provides access to the key-value settings table.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves a raw setting value. Returns ErrNotFound when the key
// has never been set.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores a raw setting value, replacing any previous one.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// All returns every stored setting.
func (r *SettingsRepository) All() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// HoldTime returns the configured hold duration, falling back to the
// default when unset or unparseable.
func (r *SettingsRepository) HoldTime() time.Duration {
	value, err := r.Get(KeyHoldTime)
	if err != nil {
		return DefaultHoldTime
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds <= 0 {
		return DefaultHoldTime
	}
	return time.Duration(seconds * float64(time.Second))
}

// SetHoldTime stores the hold duration in seconds.
func (r *SettingsRepository) SetHoldTime(d time.Duration) error {
	return r.Set(KeyHoldTime, strconv.FormatFloat(d.Seconds(), 'g', -1, 64))
}

// HistoryLimit returns the configured history retrieval limit.
func (r *SettingsRepository) HistoryLimit() int {
	value, err := r.Get(KeyHistoryLimit)
	if err != nil {
		return DefaultHistoryLimit
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}

// SetHistoryLimit stores the history retrieval limit.
func (r *SettingsRepository) SetHistoryLimit(limit int) error {
	return r.Set(KeyHistoryLimit, strconv.Itoa(limit))
}

// CameraID returns the configured capture device.
func (r *SettingsRepository) CameraID() int {
	value, err := r.Get(KeyCameraID)
	if err != nil {
		return DefaultCameraID
	}
	id, err := strconv.Atoi(value)
	if err != nil || id < 0 {
		return DefaultCameraID
	}
	return id
}

// SetCameraID stores the capture device index.
func (r *SettingsRepository) SetCameraID(id int) error {
	return r.Set(KeyCameraID, strconv.Itoa(id))
}
