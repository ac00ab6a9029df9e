package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// AchievementCategory selects which derived statistic an achievement tracks
type AchievementCategory string

const (
	AppName              = "smokeless"
	DefaultKeyringUser   = "database-connection"
	DefaultConfigPath    = "~/.config/smokeless/smokeless.db"
	DefaultAppConfigPath = "~/.config/smokeless/config.yaml"
	EnvConnectionString  = "SMOKELESS_DB_CONNECTION"
	EnvAppConfigPath     = "SMOKELESS_CONFIG"
	Version              = "v0.3.0"

	// DateFormat is the calendar-day key format used for daily logs (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "smokeless-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "smokeless-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.smokeless"
	TrayAppExecutable      = "smokeless-tray"

	// Achievement categories
	CategoryMoney      AchievementCategory = "money"
	CategoryCigarettes AchievementCategory = "cigarettes"
	CategoryDays       AchievementCategory = "days"
)

const (
	// MinutesPerCigarette is the time a single cigarette costs on the dashboard.
	MinutesPerCigarette = 10
	// PreviewMinutesPerCigarette is the looser estimate used by the onboarding results preview.
	PreviewMinutesPerCigarette = 5

	DaysPerYear       = 365
	WaterLitersPerDay = 74

	// DailyLogWindowDays is the trailing window shown for daily logs
	DailyLogWindowDays = 7

	MinMood = 1
	MaxMood = 5

	MinBirthYear = 1900

	// CalculatingDelay is how long the onboarding lingers on the calculating step
	CalculatingDelay = 6 * time.Second

	// DefaultWatchInterval is how often the milestone watcher re-evaluates progress
	DefaultWatchInterval = 15 * time.Minute
)

// Session States
const (
	StateHome SessionState = iota
	StateStats
	StateAchievements
	StateSettings
	StateLogCraving
	StateEditProfile
	StateEditSettings
	StateConfirmReset
)
