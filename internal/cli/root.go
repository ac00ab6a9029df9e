package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/smokeless/internal/backup"
	"github.com/julianstephens/smokeless/internal/config"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/feedback"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/progress"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
	Out    io.Writer
	In     io.Reader
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time

	prefs    *i18n.Preferences
	notifier *feedback.Notifier
}

func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Context) Stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Context) Stdin() io.Reader {
	if c.In != nil {
		return c.In
	}
	return os.Stdin
}

// Confirm asks a yes/no question on stdin; anything but y/yes is a no.
func (c *Context) Confirm(question string) (bool, error) {
	c.Printf("%s [y/N]: ", question)
	response, err := bufio.NewReader(c.Stdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// Printf writes command output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// AppConfig returns the loaded app config, or defaults when none was loaded.
func (c *Context) AppConfig() *config.Config {
	if c.Config == nil {
		c.Config = config.Default()
	}
	return c.Config
}

// Preferences loads the persisted settings and translator on first use.
// The store must already be loaded.
func (c *Context) Preferences() (*i18n.Preferences, error) {
	if c.prefs != nil {
		return c.prefs, nil
	}
	tr, err := i18n.New(constants.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	c.prefs = i18n.LoadPreferences(c.Store, tr)
	return c.prefs, nil
}

// Notifier returns the feedback notifier, kept in sync with the
// notifications preference.
func (c *Context) Notifier() *feedback.Notifier {
	if c.notifier != nil {
		return c.notifier
	}
	enabled := constants.DefaultNotificationsEnabled
	prefs, err := c.Preferences()
	if err == nil {
		enabled = prefs.Settings().NotificationsEnabled
		prefs.OnChange(func(s models.Settings) { c.notifier.SetEnabled(s.NotificationsEnabled) })
	}
	c.notifier = feedback.New(enabled)
	return c.notifier
}

// Location is the timezone from settings, falling back to local time.
func (c *Context) Location() *time.Location {
	tz := constants.DefaultTimezone
	if prefs, err := c.Preferences(); err == nil {
		tz = prefs.Settings().Timezone
	}
	loc, err := utils.LoadLocation(tz)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local time", "timezone", tz, "error", err)
		return time.Local
	}
	return loc
}

// Snapshot evaluates progress at the current time.
func (c *Context) Snapshot() progress.Snapshot {
	return progress.LoadSnapshot(c.Store, c.Clock())
}

// PerformAutomaticBackup creates a backup of a SQLite database and only logs
// failures.
func (c *Context) PerformAutomaticBackup() {
	backup.CreateAutomatic(c.Store.GetConfigPath())
}
