package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/smokeless/internal/models"
)

// ConflictType represents the type of data integrity problem
type ConflictType string

const (
	ConflictInvalidProfile  ConflictType = "invalid_profile"
	ConflictFutureQuitDate  ConflictType = "future_quit_date"
	ConflictInvalidDailyLog ConflictType = "invalid_daily_log"
	ConflictDuplicateLogID  ConflictType = "duplicate_log_id"
	ConflictMissingProfile  ConflictType = "missing_profile"
)

// Conflict represents a detected problem in stored data
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks stored tracker data for integrity problems
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateData checks a loaded profile, quit record and log collection.
// A nil profile or quit record means the value is absent.
func (v *Validator) ValidateData(profile *models.SmokingProfile, quit *models.QuitRecord, logs []models.DailyLog, now time.Time) ValidationResult {
	var result ValidationResult

	if profile != nil {
		if err := ValidateProfile(*profile); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidProfile,
				Description: err.Error(),
			})
		}
	} else if quit != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictMissingProfile,
			Description: "quit date is set but no smoking profile exists",
		})
	}

	if quit != nil && quit.QuitTimestamp.After(now) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictFutureQuitDate,
			Description: fmt.Sprintf("quit date %s is in the future", quit.QuitTimestamp.Format(time.RFC3339)),
		})
	}

	seen := make(map[string]bool, len(logs))
	for _, log := range logs {
		if err := ValidateDailyLog(log); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDailyLog,
				Description: fmt.Sprintf("daily log %s: %v", log.ID, err),
				Date:        log.Date,
			})
		}
		if log.ID != "" {
			if seen[log.ID] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateLogID,
					Description: fmt.Sprintf("daily log id %s appears more than once", log.ID),
					Date:        log.Date,
				})
			}
			seen[log.ID] = true
		}
	}

	return result
}
