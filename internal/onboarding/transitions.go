package onboarding

import (
	"fmt"
	"time"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/utils"
	"github.com/julianstephens/smokeless/internal/validation"
)

// transition is one row of the step table. apply validates the answer and
// writes it into the draft; it is nil for display-only steps. next and prev
// are evaluated against the draft after apply.
type transition struct {
	apply func(d *Draft, a Answer, now time.Time) error
	next  func(d Draft) Step
	prev  func(d Draft) Step
}

func to(step Step) func(Draft) Step {
	return func(Draft) Step { return step }
}

var table = map[Step]transition{
	StepWelcome: {
		next: to(StepName),
		prev: to(StepWelcome),
	},
	StepName: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			name, err := validation.ValidateName(a.Value)
			if err != nil {
				return err
			}
			d.Name = name
			return nil
		},
		next: to(StepGender),
		prev: to(StepWelcome),
	},
	StepGender: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateChoice(a.Value, GenderOptions); err != nil {
				return err
			}
			d.Gender = a.Value
			return nil
		},
		next: to(StepBirthYear),
		prev: to(StepName),
	},
	StepBirthYear: {
		apply: func(d *Draft, a Answer, now time.Time) error {
			year, err := validation.ValidateBirthYear(a.Value, now.Year())
			if err != nil {
				return err
			}
			d.BirthYear = year
			return nil
		},
		next: to(StepMotivation),
		prev: to(StepGender),
	},
	StepMotivation: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateChoice(a.Value, MotivationOptions); err != nil {
				return err
			}
			d.Motivation = a.Value
			return nil
		},
		next: to(StepFears),
		prev: to(StepBirthYear),
	},
	StepFears: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateSelection(a.Values, FearOptions); err != nil {
				return err
			}
			if len(a.Values) > MaxFears {
				return fmt.Errorf("%w: select at most %d", validation.ErrInvalidChoice, MaxFears)
			}
			d.Fears = append([]string(nil), a.Values...)
			return nil
		},
		next: to(StepMotivationCards),
		prev: to(StepMotivation),
	},
	StepMotivationCards: {
		next: to(StepQuitTime),
		prev: to(StepFears),
	},
	StepQuitTime: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateChoice(a.Value, QuitTimeOptions); err != nil {
				return err
			}
			d.QuitTime = a.Value
			if a.Value == QuitTimeUnknown {
				d.QuitDate = time.Time{}
			}
			return nil
		},
		next: func(d Draft) Step {
			if d.QuitTime == QuitTimeUnknown {
				return StepQuitPreparation
			}
			return StepQuitDate
		},
		prev: to(StepMotivationCards),
	},
	StepQuitDate: {
		apply: func(d *Draft, a Answer, now time.Time) error {
			t, err := utils.ParseQuitDate(a.Value, now.Location())
			if err != nil {
				return err
			}
			d.QuitDate = t
			return nil
		},
		next: to(StepQuitPreparation),
		prev: to(StepQuitTime),
	},
	StepQuitPreparation: {
		next: to(StepStartAge),
		prev: func(d Draft) Step {
			if d.QuitTime == QuitTimeUnknown {
				return StepQuitTime
			}
			return StepQuitDate
		},
	},
	StepStartAge: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateChoice(a.Value, StartAgeOptions); err != nil {
				return err
			}
			d.StartAge = a.Value
			return nil
		},
		next: to(StepQuitAttempts),
		prev: to(StepQuitPreparation),
	},
	StepQuitAttempts: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateChoice(a.Value, QuitAttemptsOptions); err != nil {
				return err
			}
			d.QuitAttempts = a.Value
			if a.Value == QuitAttemptsNever {
				d.QuitChallenges = nil
			}
			return nil
		},
		next: func(d Draft) Step {
			if d.QuitAttempts == QuitAttemptsNever {
				return StepCigarettesPerDay
			}
			return StepQuitChallenges
		},
		prev: to(StepStartAge),
	},
	StepQuitChallenges: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			if err := validation.ValidateSelection(a.Values, QuitChallengesOptions); err != nil {
				return err
			}
			d.QuitChallenges = append([]string(nil), a.Values...)
			return nil
		},
		next: to(StepCigarettesPerDay),
		prev: to(StepQuitAttempts),
	},
	StepCigarettesPerDay: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			n, err := validation.ParsePositiveInt(a.Value)
			if err != nil {
				return err
			}
			d.CigarettesPerDay = n
			return nil
		},
		next: to(StepCigarettesPerPack),
		prev: func(d Draft) Step {
			if d.QuitAttempts == QuitAttemptsNever {
				return StepQuitAttempts
			}
			return StepQuitChallenges
		},
	},
	StepCigarettesPerPack: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			n, err := validation.ParsePositiveInt(a.Value)
			if err != nil {
				return err
			}
			d.CigarettesPerPack = n
			return nil
		},
		next: to(StepPackPrice),
		prev: to(StepCigarettesPerDay),
	},
	StepPackPrice: {
		apply: func(d *Draft, a Answer, _ time.Time) error {
			price, err := validation.ParsePositiveFloat(a.Value)
			if err != nil {
				return err
			}
			currency := a.Currency
			if currency == "" {
				currency = constants.DefaultCurrency
			}
			if err := validation.ValidateChoice(currency, constants.Currencies); err != nil {
				return err
			}
			d.PackPrice = price
			d.Currency = currency
			return nil
		},
		next: to(StepCalculating),
		prev: to(StepCigarettesPerPack),
	},
	StepCalculating: {
		next: to(StepResults),
		prev: to(StepPackPrice),
	},
	StepResults: {
		next: to(StepAchievement),
		prev: to(StepCalculating),
	},
	StepAchievement: {
		next: to(StepAchievement),
		prev: to(StepResults),
	},
}

// Next is the successor of step for the given draft. Unknown steps map to
// themselves.
func Next(step Step, d Draft) Step {
	t, ok := table[step]
	if !ok {
		return step
	}
	return t.next(d)
}

// Prev is the predecessor of step for the given draft. Unknown steps map to
// themselves.
func Prev(step Step, d Draft) Step {
	t, ok := table[step]
	if !ok {
		return step
	}
	return t.prev(d)
}
