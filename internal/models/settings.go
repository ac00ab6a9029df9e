package models

// Settings represents process-wide user preferences
type Settings struct {
	Language             string `json:"language"`              // "TR" or "EN"
	Theme                string `json:"theme"`                 // "light" or "dark"
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether milestone notifications are sent
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local"
}
