package tracker

import (
	"errors"
	"fmt"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/utils"
)

type StartCmd struct {
	At    string `help:"Quit date and time (YYYY-MM-DD or YYYY-MM-DD HH:MM). Defaults to now."`
	Force bool   `help:"Overwrite an existing quit date."`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	existing, err := ctx.Store.GetQuitDate()
	switch {
	case err == nil && !c.Force:
		return fmt.Errorf("already tracking since %s; use --force to change the quit date", existing.In(ctx.Location()).Format("2006-01-02 15:04"))
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to read quit date: %w", err)
	}

	quit := ctx.Clock()
	if c.At != "" {
		quit, err = utils.ParseQuitDate(c.At, ctx.Location())
		if err != nil {
			return err
		}
	}

	if err := ctx.Store.SaveQuitDate(quit); err != nil {
		return fmt.Errorf("failed to save quit date: %w", err)
	}
	ctx.Printf("✓ Quit date set to %s\n", quit.In(ctx.Location()).Format("2006-01-02 15:04"))

	if _, err := ctx.Store.GetProfile(); errors.Is(err, storage.ErrNotFound) {
		ctx.Println("⚠ No smoking profile yet. Run 'smokeless profile set' or 'smokeless onboard' to see your stats.")
	}
	return nil
}
