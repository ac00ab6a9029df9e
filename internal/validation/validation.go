package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
)

var (
	ErrInvalidProfile   = errors.New("invalid smoking profile")
	ErrInvalidNumber    = errors.New("must be a positive number")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidBirthYear = errors.New("invalid birth year")
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrNoSelection      = errors.New("select at least one option")
	ErrInvalidDailyLog  = errors.New("invalid daily log")
)

// ValidateProfile enforces the profile rules. CigarettesPerPack is a
// divisor in every money computation, so it must be strictly positive.
func ValidateProfile(p models.SmokingProfile) error {
	if p.CigarettesPerPack <= 0 {
		return fmt.Errorf("%w: cigarettes per pack must be greater than zero", ErrInvalidProfile)
	}
	if p.CigarettesPerDay < 0 {
		return fmt.Errorf("%w: cigarettes per day cannot be negative", ErrInvalidProfile)
	}
	if !isFinite(p.PricePerPack) || !isFinite(p.SmokingYears) {
		return fmt.Errorf("%w: price and smoking years must be finite numbers", ErrInvalidProfile)
	}
	if p.PricePerPack < 0 {
		return fmt.Errorf("%w: price per pack cannot be negative", ErrInvalidProfile)
	}
	if p.SmokingYears < 0 {
		return fmt.Errorf("%w: smoking years cannot be negative", ErrInvalidProfile)
	}
	return nil
}

// ParsePositiveInt parses a user-entered whole number greater than zero.
func ParsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

// ParsePositiveFloat parses a user-entered amount greater than zero.
// A decimal comma is accepted.
func ParsePositiveFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) || f <= 0 {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ValidateName returns the trimmed name or ErrEmptyName.
func ValidateName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// ValidateBirthYear accepts a four digit year between MinBirthYear and currentYear.
func ValidateBirthYear(s string, currentYear int) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, ErrInvalidBirthYear
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < constants.MinBirthYear || year > currentYear {
		return 0, fmt.Errorf("%w: must be between %d and %d", ErrInvalidBirthYear, constants.MinBirthYear, currentYear)
	}
	return year, nil
}

// ValidateChoice checks that value is one of options.
func ValidateChoice(value string, options []string) error {
	for _, o := range options {
		if o == value {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidChoice, value)
}

// ValidateSelection checks a multi-select answer: at least one entry, all known.
func ValidateSelection(values []string, options []string) error {
	if len(values) == 0 {
		return ErrNoSelection
	}
	for _, v := range values {
		if err := ValidateChoice(v, options); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDailyLog checks the date key, cravings count and mood range.
func ValidateDailyLog(log models.DailyLog) error {
	if _, err := time.Parse(constants.DateFormat, log.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidDailyLog)
	}
	if log.Cravings < 0 {
		return fmt.Errorf("%w: cravings cannot be negative", ErrInvalidDailyLog)
	}
	if log.Mood < constants.MinMood || log.Mood > constants.MaxMood {
		return fmt.Errorf("%w: mood must be between %d and %d", ErrInvalidDailyLog, constants.MinMood, constants.MaxMood)
	}
	return nil
}
