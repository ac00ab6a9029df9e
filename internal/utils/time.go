package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// GetTodayFromSettings returns today's date key using the timezone from settings.
func GetTodayFromSettings(settings models.Settings) (string, error) {
	now, err := NowInTimezone(settings.Timezone)
	if err != nil {
		return "", err
	}
	return DayKey(now), nil
}

// DayKey formats t as a calendar-day key (YYYY-MM-DD) in t's own location.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// TrailingWindow returns the first and last day keys of the days-long window
// ending on now's calendar day, inclusive.
func TrailingWindow(now time.Time, days int) (string, string) {
	if days < 1 {
		days = 1
	}
	start := now.AddDate(0, 0, -(days - 1))
	return DayKey(start), DayKey(now)
}

// DailyIndex picks a stable index in [0, n) for now's calendar day, so a
// rotating list shows the same entry all day.
func DailyIndex(now time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	idx := int(day.Unix()/86400) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

var quitDateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	constants.DateFormat,
}

// ParseQuitDate accepts RFC3339, "YYYY-MM-DD HH:MM" or "YYYY-MM-DD" in loc.
func ParseQuitDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range quitDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYY-MM-DD HH:MM", s)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// FormatCountdown renders d as "Xd Yh Zm", dropping leading zero units.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Minutes())
	days := total / (24 * 60)
	hours := (total % (24 * 60)) / 60
	minutes := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
