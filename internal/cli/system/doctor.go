package system

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/smokeless/internal/backup"
	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/utils"
	"github.com/julianstephens/smokeless/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database is unreachable
	needsDB bool
	// warnOnly failures do not fail the command
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Onboarding state", needsDB: true, run: checkOnboardingState},
	{name: "Data integrity", needsDB: true, run: checkDataIntegrity},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if m, ok := ctx.Store.(storage.Migratable); ok {
		if err := m.Ping(); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func schemaVersion(ctx *cli.Context) (int, int, bool, error) {
	m, ok := ctx.Store.(storage.Migratable)
	if !ok {
		return 0, 0, false, nil
	}
	current, latest, err := m.SchemaVersion()
	return current, latest, true, err
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, ok, err := schemaVersion(ctx)
	if !ok {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, ok, err := schemaVersion(ctx)
	if !ok {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'smokeless migrate')", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if storage.IsPostgresConnString(path) {
		return nil
	}
	backups, err := backup.NewManager(path).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'smokeless backup create'")
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if _, err := i18n.New(settings.Language); err != nil {
		return err
	}
	if settings.Theme != constants.ThemeLight && settings.Theme != constants.ThemeDark {
		return fmt.Errorf("unknown theme %q", settings.Theme)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("unknown timezone %q", settings.Timezone)
	}
	return nil
}

// checkOnboardingState verifies a completed onboarding left a quit date and
// a profile behind.
func checkOnboardingState(ctx *cli.Context) error {
	completed, err := ctx.Store.IsOnboardingCompleted()
	if err != nil {
		return fmt.Errorf("failed to read onboarding state: %w", err)
	}
	if !completed {
		return nil
	}
	if _, err := ctx.Store.GetQuitDate(); err != nil {
		return fmt.Errorf("onboarding is complete but the quit date is missing: %w", err)
	}
	if _, err := ctx.Store.GetProfile(); err != nil {
		return fmt.Errorf("onboarding is complete but the profile is missing: %w", err)
	}
	return nil
}

// checkDataIntegrity runs the stored profile, quit date and check-ins
// through the validator.
func checkDataIntegrity(ctx *cli.Context) error {
	var profile *models.SmokingProfile
	p, err := ctx.Store.GetProfile()
	switch {
	case err == nil:
		profile = &p
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read profile: %w", err)
	}

	var quit *models.QuitRecord
	q, err := ctx.Store.GetQuitDate()
	switch {
	case err == nil:
		quit = &models.QuitRecord{QuitTimestamp: q}
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read quit date: %w", err)
	}

	logs, err := ctx.Store.GetDailyLogs()
	if err != nil {
		return fmt.Errorf("failed to read daily logs: %w", err)
	}

	result := validation.New().ValidateData(profile, quit, logs, ctx.Clock())
	if result.HasConflicts() {
		return errors.New(strings.TrimSpace(result.FormatReport()))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
