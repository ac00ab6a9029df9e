package progress

import (
	"errors"
	"time"

	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/storage"
)

// Source is the read side of the persistence provider needed for a snapshot.
type Source interface {
	GetQuitDate() (time.Time, error)
	GetProfile() (models.SmokingProfile, error)
}

// Snapshot is everything the dashboard shows for one instant.
type Snapshot struct {
	Ready        bool // false when no quit date or profile exists yet
	Now          time.Time
	Quit         time.Time
	Profile      models.SmokingProfile
	Stats        models.DerivedStats
	Achievements []models.AchievementStatus
	Benefits     []models.HealthBenefitStatus
}

// LoadSnapshot reads the quit date and profile and derives all statistics.
// Read failures are logged and degrade to a not-ready snapshot.
func LoadSnapshot(src Source, now time.Time) Snapshot {
	snap := Snapshot{Now: now}

	quit, err := src.GetQuitDate()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error("Failed to read quit date", "error", err)
		}
		return snap
	}

	profile, err := src.GetProfile()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Error("Failed to read smoking profile", "error", err)
		}
		return snap
	}
	if profile.CigarettesPerPack <= 0 {
		logger.Warn("Stored profile has no pack size, skipping stats", "cigarettesPerPack", profile.CigarettesPerPack)
		return snap
	}

	stats := ComputeStats(quit, profile, now)
	return Snapshot{
		Ready:        true,
		Now:          now,
		Quit:         quit,
		Profile:      profile,
		Stats:        stats,
		Achievements: EvaluateAchievements(stats, Achievements()),
		Benefits:     EvaluateBenefits(quit, now, Benefits()),
	}
}
