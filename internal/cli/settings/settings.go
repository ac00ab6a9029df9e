package settings

import (
	"github.com/julianstephens/smokeless/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Language      string `help:"Interface language (TR or EN)."`
	Theme         string `help:"Colour theme (light or dark)."`
	Notifications *bool  `help:"Enable or disable milestone notifications."`
	Timezone      string `help:"IANA timezone name, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}

	if c.List {
		s := prefs.Settings()
		ctx.Println("Current Settings:")
		ctx.Printf("  Language:              %s\n", s.Language)
		ctx.Printf("  Theme:                 %s\n", s.Theme)
		ctx.Printf("  Notifications Enabled: %v\n", s.NotificationsEnabled)
		ctx.Printf("  Timezone:              %s\n", s.Timezone)
		return nil
	}

	updated := false
	if c.Language != "" {
		if err := prefs.SetLanguage(c.Language); err != nil {
			return err
		}
		updated = true
	}
	if c.Theme != "" {
		if err := prefs.SetTheme(c.Theme); err != nil {
			return err
		}
		updated = true
	}
	if c.Notifications != nil {
		if err := prefs.SetNotificationsEnabled(*c.Notifications); err != nil {
			return err
		}
		updated = true
	}
	if c.Timezone != "" {
		if err := prefs.SetTimezone(c.Timezone); err != nil {
			return err
		}
		updated = true
	}

	if updated {
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
