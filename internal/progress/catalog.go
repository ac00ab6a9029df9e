package progress

import (
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
)

var achievementCatalog = []models.Achievement{
	{ID: "money_1", Category: constants.CategoryMoney, Target: 100, Icon: "wallet"},
	{ID: "money_2", Category: constants.CategoryMoney, Target: 500, Icon: "cash"},
	{ID: "money_3", Category: constants.CategoryMoney, Target: 1000, Icon: "diamond"},
	{ID: "money_4", Category: constants.CategoryMoney, Target: 2500, Icon: "gift"},
	{ID: "money_5", Category: constants.CategoryMoney, Target: 5000, Icon: "briefcase"},

	{ID: "cigarettes_1", Category: constants.CategoryCigarettes, Target: 50, Icon: "leaf"},
	{ID: "cigarettes_2", Category: constants.CategoryCigarettes, Target: 100, Icon: "heart"},
	{ID: "cigarettes_3", Category: constants.CategoryCigarettes, Target: 250, Icon: "fitness"},
	{ID: "cigarettes_4", Category: constants.CategoryCigarettes, Target: 500, Icon: "shield"},
	{ID: "cigarettes_5", Category: constants.CategoryCigarettes, Target: 1000, Icon: "medal"},
	{ID: "cigarettes_6", Category: constants.CategoryCigarettes, Target: 2000, Icon: "ribbon"},

	{ID: "days_1", Category: constants.CategoryDays, Target: 1, Icon: "sunny"},
	{ID: "days_2", Category: constants.CategoryDays, Target: 3, Icon: "star"},
	{ID: "days_3", Category: constants.CategoryDays, Target: 7, Icon: "calendar"},
	{ID: "days_4", Category: constants.CategoryDays, Target: 14, Icon: "trophy"},
	{ID: "days_5", Category: constants.CategoryDays, Target: 30, Icon: "moon"},
	{ID: "days_6", Category: constants.CategoryDays, Target: 90, Icon: "earth"},
	{ID: "days_7", Category: constants.CategoryDays, Target: 180, Icon: "planet"},
	{ID: "days_8", Category: constants.CategoryDays, Target: 365, Icon: "infinite"},
}

var benefitCatalog = []models.HealthBenefit{
	{ID: "20m", ThresholdMinutes: 20, Icon: "heart"},
	{ID: "8h", ThresholdMinutes: 8 * 60, Icon: "water"},
	{ID: "24h", ThresholdMinutes: 24 * 60, Icon: "fitness"},
	{ID: "48h", ThresholdMinutes: 48 * 60, Icon: "restaurant"},
	{ID: "72h", ThresholdMinutes: 72 * 60, Icon: "leaf"},
	{ID: "2w", ThresholdMinutes: 14 * 24 * 60, Icon: "medkit"},
	{ID: "1m", ThresholdMinutes: 30 * 24 * 60, Icon: "flash"},
	{ID: "3m", ThresholdMinutes: 90 * 24 * 60, Icon: "pulse"},
	{ID: "6m", ThresholdMinutes: 180 * 24 * 60, Icon: "shield"},
	{ID: "1y", ThresholdMinutes: 365 * 24 * 60, Icon: "ribbon"},
}

var achievementIndex = func() map[string]models.Achievement {
	idx := make(map[string]models.Achievement, len(achievementCatalog))
	for _, a := range achievementCatalog {
		idx[a.ID] = a
	}
	return idx
}()

// Achievements returns a copy of the achievement catalog in catalog order.
func Achievements() []models.Achievement {
	out := make([]models.Achievement, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (models.Achievement, bool) {
	a, ok := achievementIndex[id]
	return a, ok
}

// Benefits returns a copy of the health-benefit catalog ordered by threshold.
func Benefits() []models.HealthBenefit {
	out := make([]models.HealthBenefit, len(benefitCatalog))
	copy(out, benefitCatalog)
	return out
}
