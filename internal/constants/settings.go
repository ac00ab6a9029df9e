package constants

const (
	SettingLanguage             = "language"
	SettingTheme                = "theme"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTimezone             = "timezone"

	LanguageTR = "TR"
	LanguageEN = "EN"

	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultLanguage             = LanguageTR
	DefaultTheme                = ThemeLight
	DefaultNotificationsEnabled = true
	DefaultTimezone             = "Local"
)
