package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/smokeless/internal/models"
)

var (
	// ErrNotFound is returned when a single-valued entry has never been saved
	ErrNotFound = errors.New("not found")
	// ErrNotInitialized is returned by Load before init has created the store
	ErrNotInitialized = errors.New("storage not initialized, run 'smokeless init' first")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Quit record
	GetQuitDate() (time.Time, error)
	SaveQuitDate(time.Time) error

	// Profile
	GetProfile() (models.SmokingProfile, error)
	// SaveProfile rejects profiles that fail validation.ValidateProfile.
	SaveProfile(models.SmokingProfile) error

	// Daily logs, ordered by date then creation time
	GetDailyLogs() ([]models.DailyLog, error)
	GetDailyLogsInRange(startDay, endDay string) ([]models.DailyLog, error)
	SaveDailyLog(models.DailyLog) error

	// Onboarding
	IsOnboardingCompleted() (bool, error)
	SetOnboardingCompleted(bool) error
	// CompleteOnboarding saves the profile and quit date and sets the
	// onboarding flag in one transaction.
	CompleteOnboarding(profile models.SmokingProfile, quit time.Time) error

	// Milestones already signalled by the watcher
	GetNotifiedMilestones() ([]string, error)
	MarkMilestonesNotified(ids []string) error

	// ResetAll deletes the quit date, profile, daily logs, onboarding flag
	// and notified milestones in one transaction. Settings are kept.
	ResetAll() error

	// Utils
	GetConfigPath() string
}

// Migratable is implemented by stores whose schema is versioned.
type Migratable interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current int, latest int, err error)
	Ping() error
}
