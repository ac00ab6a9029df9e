package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()
	return runTUI(ctx, false)
}

// OnboardCmd reruns the onboarding questionnaire even when it was completed.
type OnboardCmd struct{}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	return runTUI(ctx, true)
}

func runTUI(ctx *cli.Context, forceOnboarding bool) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}
	delay, err := ctx.AppConfig().CalculatingDelay()
	if err != nil {
		return err
	}

	model, err := tui.New(tui.Options{
		Store:            ctx.Store,
		Preferences:      prefs,
		Notifier:         ctx.Notifier(),
		CalculatingDelay: delay,
		Now:              ctx.Now,
		ForceOnboarding:  forceOnboarding,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
