package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/storage/postgres"
	"github.com/julianstephens/smokeless/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	if err := seedPreferences(ctx); err != nil {
		return err
	}
	ctx.Printf("Initialized smokeless storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if storage.IsPostgresConnString(dbPath) {
		return errors.New("--force is only supported for SQLite databases; use 'smokeless reset' for PostgreSQL")
	}
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// seedPreferences applies the app config's preference defaults to a fresh
// settings row.
func seedPreferences(ctx *cli.Context) error {
	prefsCfg := ctx.AppConfig().Preferences
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if prefsCfg.Language != "" {
		if _, err := i18n.New(prefsCfg.Language); err != nil {
			return fmt.Errorf("config preferences.language: %w", err)
		}
		settings.Language = prefsCfg.Language
	}
	if prefsCfg.Theme != "" {
		settings.Theme = prefsCfg.Theme
	}
	if prefsCfg.Timezone != "" {
		settings.Timezone = prefsCfg.Timezone
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if storage.IsPostgresConnString(source) {
		if _, err := postgres.ValidateConnString(source); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	}
	return sqlite.NewStore(source), nil
}

func (c *InitCmd) copyData(ctx *cli.Context) error {
	src, err := openSource(c.Source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	dst := ctx.Store

	ctx.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Copying quit date and profile...")
	if quit, err := src.GetQuitDate(); err == nil {
		if err := dst.SaveQuitDate(quit); err != nil {
			return fmt.Errorf("failed to save quit date: %w", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get quit date from source: %w", err)
	}
	if profile, err := src.GetProfile(); err == nil {
		if err := dst.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get profile from source: %w", err)
	}
	completed, err := src.IsOnboardingCompleted()
	if err != nil {
		return fmt.Errorf("failed to get onboarding state from source: %w", err)
	}
	if err := dst.SetOnboardingCompleted(completed); err != nil {
		return fmt.Errorf("failed to save onboarding state: %w", err)
	}

	ctx.Println("  Copying daily logs...")
	logs, err := src.GetDailyLogs()
	if err != nil {
		return fmt.Errorf("failed to get daily logs from source: %w", err)
	}
	for _, log := range logs {
		if err := dst.SaveDailyLog(log); err != nil {
			return fmt.Errorf("failed to save daily log %s: %w", log.ID, err)
		}
	}
	ctx.Printf("    Copied %d daily logs\n", len(logs))

	ctx.Println("  Copying notified milestones...")
	ids, err := src.GetNotifiedMilestones()
	if err != nil {
		return fmt.Errorf("failed to get notified milestones from source: %w", err)
	}
	if err := dst.MarkMilestonesNotified(ids); err != nil {
		return fmt.Errorf("failed to save notified milestones: %w", err)
	}
	ctx.Printf("    Copied %d milestones\n", len(ids))

	return nil
}
