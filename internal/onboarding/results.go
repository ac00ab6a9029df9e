package onboarding

import (
	"math"

	"github.com/julianstephens/smokeless/internal/constants"
)

// ResultsPreview is the one-year projection shown on the Results step.
type ResultsPreview struct {
	Currency                   string
	AnnualSavings              float64
	CigarettesNotSmokedPerYear int
	DaysOfTimeSaved            float64
	LitersOfWaterSaved         int
}

// CalculateResults projects a year without smoking from the draft. It does
// not modify the draft. A draft without a pack size yields zero savings.
func CalculateResults(d Draft) ResultsPreview {
	currency := d.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	var savings float64
	if d.CigarettesPerPack > 0 {
		packsPerDay := float64(d.CigarettesPerDay) / float64(d.CigarettesPerPack)
		savings = packsPerDay * d.PackPrice * constants.DaysPerYear
	}

	cigarettes := d.CigarettesPerDay * constants.DaysPerYear
	days := float64(cigarettes*constants.PreviewMinutesPerCigarette) / 60 / 24

	return ResultsPreview{
		Currency:                   currency,
		AnnualSavings:              math.Round(savings*100) / 100,
		CigarettesNotSmokedPerYear: cigarettes,
		DaysOfTimeSaved:            math.Round(days*10) / 10,
		LitersOfWaterSaved:         constants.DaysPerYear * constants.WaterLitersPerDay,
	}
}
