package onboarding

import (
	"fmt"
	"time"

	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/validation"
)

// Store is the persistence needed to complete onboarding. CompleteOnboarding
// must write the profile, quit date and completion flag atomically.
type Store interface {
	CompleteOnboarding(profile models.SmokingProfile, quit time.Time) error
}

// Profile converts the draft into a smoking profile, deriving years smoked
// from the birth year and the start age bracket.
func (d Draft) Profile(now time.Time) models.SmokingProfile {
	return models.SmokingProfile{
		Name:              d.Name,
		CigarettesPerDay:  d.CigarettesPerDay,
		PricePerPack:      d.PackPrice,
		CigarettesPerPack: d.CigarettesPerPack,
		SmokingYears:      float64(smokingYears(d, now.Year())),
		Goals:             []string{},
		Currency:          d.Currency,
	}
}

// QuitRecord uses the answered quit date, or now when the user did not pick one.
func (d Draft) QuitRecord(now time.Time) models.QuitRecord {
	if d.HasQuitDate() {
		return models.QuitRecord{QuitTimestamp: d.QuitDate}
	}
	return models.QuitRecord{QuitTimestamp: now}
}

func smokingYears(d Draft, currentYear int) int {
	if d.BirthYear == 0 {
		return 0
	}
	start, ok := startAgeLowerBound[d.StartAge]
	if !ok {
		return 0
	}
	years := currentYear - d.BirthYear - start
	if years < 0 {
		return 0
	}
	return years
}

// Finalize saves the profile and quit record and marks onboarding complete
// in a single store call.
// It is only allowed on the Achievement step.
func (f *Flow) Finalize(store Store) (models.SmokingProfile, models.QuitRecord, error) {
	f.mu.Lock()
	step := f.step
	draft := f.draft.clone()
	now := f.clock()
	f.mu.Unlock()

	if step != StepAchievement {
		return models.SmokingProfile{}, models.QuitRecord{}, ErrNotFinished
	}

	profile := draft.Profile(now)
	if err := validation.ValidateProfile(profile); err != nil {
		return models.SmokingProfile{}, models.QuitRecord{}, err
	}
	quit := draft.QuitRecord(now)

	if err := store.CompleteOnboarding(profile, quit.QuitTimestamp); err != nil {
		return models.SmokingProfile{}, models.QuitRecord{}, fmt.Errorf("failed to complete onboarding: %w", err)
	}

	return profile, quit, nil
}
