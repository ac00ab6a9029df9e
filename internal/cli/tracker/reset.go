package tracker

import (
	"fmt"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/logger"
)

// ResetCmd is the "I smoked" action: it wipes the quit date, profile, logs
// and milestones so tracking starts over. Settings are kept.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ctx.Println("⚠️  WARNING: This deletes your quit date, profile, daily check-ins and achievements.")
		ctx.Println("A backup of your current database will be created first.")
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	logger.Info("Progress reset")

	ctx.Println("✓ Progress reset. Run 'smokeless onboard' or 'smokeless start' to begin again.")
	return nil
}
