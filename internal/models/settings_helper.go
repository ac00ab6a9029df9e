package models

import (
	"strconv"

	"github.com/julianstephens/smokeless/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingLanguage:
			settings.Language = value
		case constants.SettingTheme:
			settings.Theme = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingLanguage:             settings.Language,
		constants.SettingTheme:                settings.Theme,
		constants.SettingNotificationsEnabled: strconv.FormatBool(settings.NotificationsEnabled),
		constants.SettingTimezone:             settings.Timezone,
	}
}

// DefaultSettings returns the settings written by init.
func DefaultSettings() Settings {
	return Settings{
		Language:             constants.DefaultLanguage,
		Theme:                constants.DefaultTheme,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		Timezone:             constants.DefaultTimezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Language == "" {
		settings.Language = constants.DefaultLanguage
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
