package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/watch"
)

type WatchCmd struct {
	Interval time.Duration `help:"How often to re-evaluate progress. Defaults to watch.interval from the app config."`
	Once     bool          `help:"Run a single check and exit."`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}

	interval := c.Interval
	if interval == 0 {
		interval, err = ctx.AppConfig().WatchInterval()
		if err != nil {
			return err
		}
	}
	if interval < time.Minute {
		return fmt.Errorf("interval must be at least 1m, got %s", interval)
	}

	w := watch.New(ctx.Store, ctx.Notifier(), prefs.Translator().MilestoneTitle, interval, watch.WithClock(ctx.Clock))

	if c.Once {
		fresh, err := w.Check()
		if err != nil {
			return err
		}
		ctx.Printf("✓ Checked milestones: %d newly reached\n", len(fresh))
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Printf("Watching milestones every %s (Ctrl+C to stop)\n", interval)
	return w.Run(sigCtx)
}
