package models

import "github.com/julianstephens/smokeless/internal/constants"

// DerivedStats is recomputed on every read and never persisted
type DerivedStats struct {
	DaysSince           int     `json:"daysSince"`
	MoneySaved          float64 `json:"moneySaved"`
	CigarettesNotSmoked int     `json:"cigarettesNotSmoked"`
	TimeRegainedHours   float64 `json:"timeRegainedHours"`
}

// Achievement is an entry in the static achievement catalog
type Achievement struct {
	ID       string                        `json:"id"`
	Category constants.AchievementCategory `json:"category"`
	Target   float64                       `json:"target"`
	Icon     string                        `json:"icon"`
}

// AchievementStatus is an achievement evaluated against a stats snapshot
type AchievementStatus struct {
	Achievement
	Unlocked        bool    `json:"unlocked"`
	ProgressPercent float64 `json:"progressPercent"`
}

// HealthBenefit is an entry in the static health-benefit catalog
type HealthBenefit struct {
	ID               string `json:"id"`
	ThresholdMinutes int    `json:"thresholdMinutes"`
	Icon             string `json:"icon"`
}

// HealthBenefitStatus is a benefit evaluated against elapsed time
type HealthBenefitStatus struct {
	HealthBenefit
	Achieved bool `json:"achieved"`
}
