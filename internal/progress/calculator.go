// Package progress derives quit statistics, achievements and health benefits
// from a quit timestamp, a smoking profile and the current time.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
)

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// ElapsedDays returns the number of started days between quit and now.
// The distance is absolute so a clock set before the quit date still yields a
// non-negative count, and a partial day counts as a whole one.
func ElapsedDays(quit, now time.Time) int {
	elapsed := now.Sub(quit).Milliseconds()
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return int(math.Ceil(float64(elapsed) / float64(dayMillis)))
}

// ElapsedMinutes returns whole minutes since quit, negative if now is earlier.
func ElapsedMinutes(quit, now time.Time) int {
	return int(math.Floor(float64(now.Sub(quit).Milliseconds()) / float64(time.Minute/time.Millisecond)))
}

// ComputeStats derives the dashboard statistics. The profile must have passed
// validation.ValidateProfile; CigarettesPerPack is not guarded here.
func ComputeStats(quit time.Time, profile models.SmokingProfile, now time.Time) models.DerivedStats {
	days := ElapsedDays(quit, now)
	cigarettes := days * profile.CigarettesPerDay
	packsPerDay := float64(profile.CigarettesPerDay) / float64(profile.CigarettesPerPack)

	return models.DerivedStats{
		DaysSince:           days,
		MoneySaved:          float64(days) * packsPerDay * profile.PricePerPack,
		CigarettesNotSmoked: cigarettes,
		TimeRegainedHours:   float64(cigarettes*constants.MinutesPerCigarette) / 60,
	}
}

func statFor(stats models.DerivedStats, category constants.AchievementCategory) float64 {
	switch category {
	case constants.CategoryMoney:
		return stats.MoneySaved
	case constants.CategoryCigarettes:
		return float64(stats.CigarettesNotSmoked)
	case constants.CategoryDays:
		return float64(stats.DaysSince)
	default:
		return 0
	}
}

// EvaluateAchievements scores every catalog entry against stats and returns
// them in display order: unlocked by descending target, then locked by
// descending progress. Ties keep catalog order.
func EvaluateAchievements(stats models.DerivedStats, catalog []models.Achievement) []models.AchievementStatus {
	var unlocked, locked []models.AchievementStatus

	for _, a := range catalog {
		pct := 0.0
		if a.Target > 0 {
			pct = math.Min(100, 100*statFor(stats, a.Category)/a.Target)
		}
		status := models.AchievementStatus{
			Achievement:     a,
			ProgressPercent: pct,
			Unlocked:        pct >= 100,
		}
		if status.Unlocked {
			unlocked = append(unlocked, status)
		} else {
			locked = append(locked, status)
		}
	}

	sort.SliceStable(unlocked, func(i, j int) bool {
		return unlocked[i].Target > unlocked[j].Target
	})
	sort.SliceStable(locked, func(i, j int) bool {
		return locked[i].ProgressPercent > locked[j].ProgressPercent
	})

	return append(unlocked, locked...)
}

// EvaluateBenefits marks each benefit achieved once the whole minutes elapsed
// since quit reach its threshold. Catalog order is preserved.
func EvaluateBenefits(quit, now time.Time, catalog []models.HealthBenefit) []models.HealthBenefitStatus {
	minutes := ElapsedMinutes(quit, now)
	out := make([]models.HealthBenefitStatus, 0, len(catalog))
	for _, b := range catalog {
		out = append(out, models.HealthBenefitStatus{
			HealthBenefit: b,
			Achieved:      minutes >= b.ThresholdMinutes,
		})
	}
	return out
}

// NextBenefit returns the lowest-threshold benefit not yet achieved and the
// time left until it is. ok is false once every benefit is achieved.
func NextBenefit(quit, now time.Time, catalog []models.HealthBenefit) (next models.HealthBenefit, remaining time.Duration, ok bool) {
	elapsed := now.Sub(quit)
	for _, b := range catalog {
		threshold := time.Duration(b.ThresholdMinutes) * time.Minute
		if elapsed < threshold && (!ok || b.ThresholdMinutes < next.ThresholdMinutes) {
			next, remaining, ok = b, threshold-elapsed, true
		}
	}
	return next, remaining, ok
}

// CountUnlocked returns how many statuses are unlocked.
func CountUnlocked(statuses []models.AchievementStatus) int {
	n := 0
	for _, s := range statuses {
		if s.Unlocked {
			n++
		}
	}
	return n
}
