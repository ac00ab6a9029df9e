package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/validation"
)

func (s *Store) getValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *Store) setValue(key, value string) error {
	return putValue(s.db, key, value)
}

func putValue(ex execer, key, value string) error {
	_, err := ex.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) GetQuitDate() (time.Time, error) {
	value, err := s.getValue(constants.KeyQuitDate)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse quit date %q: %w", value, err)
	}
	return t, nil
}

func (s *Store) SaveQuitDate(t time.Time) error {
	return s.setValue(constants.KeyQuitDate, t.UTC().Format(time.RFC3339Nano))
}

func (s *Store) GetProfile() (models.SmokingProfile, error) {
	value, err := s.getValue(constants.KeyUserProfile)
	if err != nil {
		return models.SmokingProfile{}, err
	}
	var profile models.SmokingProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return models.SmokingProfile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	if profile.Goals == nil {
		profile.Goals = []string{}
	}
	return profile, nil
}

func (s *Store) SaveProfile(profile models.SmokingProfile) error {
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}
	return s.setValue(constants.KeyUserProfile, data)
}

func encodeProfile(profile models.SmokingProfile) (string, error) {
	if err := validation.ValidateProfile(profile); err != nil {
		return "", err
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}
	return string(data), nil
}

func (s *Store) IsOnboardingCompleted() (bool, error) {
	value, err := s.getValue(constants.KeyOnboardingCompleted)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return value == "true", nil
}

func (s *Store) SetOnboardingCompleted(completed bool) error {
	return s.setValue(constants.KeyOnboardingCompleted, fmt.Sprintf("%t", completed))
}

func (s *Store) CompleteOnboarding(profile models.SmokingProfile, quit time.Time) error {
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin onboarding commit: %w", err)
	}
	defer tx.Rollback()

	if err := putValue(tx, constants.KeyUserProfile, data); err != nil {
		return err
	}
	if err := putValue(tx, constants.KeyQuitDate, quit.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}
	if err := putValue(tx, constants.KeyOnboardingCompleted, "true"); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) ResetAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM kv WHERE key IN (?, ?, ?)",
		constants.KeyQuitDate, constants.KeyUserProfile, constants.KeyOnboardingCompleted); err != nil {
		return fmt.Errorf("failed to clear tracker state: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM daily_logs"); err != nil {
		return fmt.Errorf("failed to clear daily logs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM notified_milestones"); err != nil {
		return fmt.Errorf("failed to clear notified milestones: %w", err)
	}

	return tx.Commit()
}
