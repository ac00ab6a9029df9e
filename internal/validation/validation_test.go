package validation

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/julianstephens/smokeless/internal/models"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile models.SmokingProfile
		wantErr bool
	}{
		{
			name:    "valid profile",
			profile: models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: 30, CigarettesPerPack: 20},
			wantErr: false,
		},
		{
			name:    "zero cigarettes per pack",
			profile: models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: 30, CigarettesPerPack: 0},
			wantErr: true,
		},
		{
			name:    "negative cigarettes per pack",
			profile: models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: 30, CigarettesPerPack: -5},
			wantErr: true,
		},
		{
			name:    "negative price",
			profile: models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: -1, CigarettesPerPack: 20},
			wantErr: true,
		},
		{
			name:    "NaN price",
			profile: models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: math.NaN(), CigarettesPerPack: 20},
			wantErr: true,
		},
		{
			name:    "infinite smoking years",
			profile: models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: 30, CigarettesPerPack: 20, SmokingYears: math.Inf(1)},
			wantErr: true,
		},
		{
			name:    "zero cigarettes per day is allowed",
			profile: models.SmokingProfile{CigarettesPerDay: 0, PricePerPack: 30, CigarettesPerPack: 20},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("ValidateProfile() error = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"20", 20, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePositiveInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePositiveInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePositiveInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePositiveFloat(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"30", 30, false},
		{"42.5", 42.5, false},
		{"42,5", 42.5, false},
		{"0", 0, true},
		{"", 0, true},
		{"free", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"+Inf", 0, true},
		{"-Inf", 0, true},
		{"1e400", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePositiveFloat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePositiveFloat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePositiveFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	if _, err := ValidateName("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("ValidateName(blank) error = %v, want ErrEmptyName", err)
	}
	name, err := ValidateName("  Deniz ")
	if err != nil {
		t.Fatalf("ValidateName() error = %v", err)
	}
	if name != "Deniz" {
		t.Errorf("ValidateName() = %q, want %q", name, "Deniz")
	}
}

func TestValidateBirthYear(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1990", false},
		{"1900", false},
		{"2026", false},
		{"2027", true},
		{"1899", true},
		{"90", true},
		{"19a0", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ValidateBirthYear(tt.input, 2026)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBirthYear(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSelection(t *testing.T) {
	options := []string{"stress", "failure"}

	if err := ValidateSelection(nil, options); !errors.Is(err, ErrNoSelection) {
		t.Errorf("ValidateSelection(nil) error = %v, want ErrNoSelection", err)
	}
	if err := ValidateSelection([]string{"stress", "boredom"}, options); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("ValidateSelection(unknown) error = %v, want ErrInvalidChoice", err)
	}
	if err := ValidateSelection([]string{"failure"}, options); err != nil {
		t.Errorf("ValidateSelection(valid) error = %v", err)
	}
}

func TestValidateDailyLog(t *testing.T) {
	tests := []struct {
		name    string
		log     models.DailyLog
		wantErr bool
	}{
		{"valid", models.DailyLog{Date: "2024-01-05", Cravings: 3, Mood: 4}, false},
		{"bad date", models.DailyLog{Date: "05/01/2024", Cravings: 3, Mood: 4}, true},
		{"negative cravings", models.DailyLog{Date: "2024-01-05", Cravings: -1, Mood: 4}, true},
		{"mood too low", models.DailyLog{Date: "2024-01-05", Mood: 0}, true},
		{"mood too high", models.DailyLog{Date: "2024-01-05", Mood: 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDailyLog(tt.log)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDailyLog() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateData(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	validator := New()

	profile := &models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: 30, CigarettesPerPack: 0}
	quit := &models.QuitRecord{QuitTimestamp: now.Add(48 * time.Hour)}
	logs := []models.DailyLog{
		{ID: "a", Date: "2024-01-30", Mood: 3},
		{ID: "a", Date: "2024-01-31", Mood: 9},
	}

	result := validator.ValidateData(profile, quit, logs, now)
	if !result.HasConflicts() {
		t.Fatal("Expected conflicts")
	}

	want := map[ConflictType]bool{
		ConflictInvalidProfile:  true,
		ConflictFutureQuitDate:  true,
		ConflictInvalidDailyLog: true,
		ConflictDuplicateLogID:  true,
	}
	for _, c := range result.Conflicts {
		delete(want, c.Type)
	}
	if len(want) != 0 {
		t.Errorf("missing conflict types: %v", want)
	}

	clean := validator.ValidateData(nil, nil, nil, now)
	if clean.HasConflicts() {
		t.Errorf("Expected no conflicts for empty data, got %s", clean.FormatReport())
	}
}
