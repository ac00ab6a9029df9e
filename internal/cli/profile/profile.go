package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/validation"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the smoking profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update smoking profile fields."`
	Goal struct {
		Add    GoalAddCmd    `cmd:"" help:"Add a personal goal."`
		Remove GoalRemoveCmd `cmd:"" help:"Remove a goal by its number or text."`
	} `cmd:"" help:"Manage personal goals."`
}

func load(ctx *cli.Context) (models.SmokingProfile, error) {
	p, err := ctx.Store.GetProfile()
	if err != nil {
		return models.SmokingProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return p, nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}
	tr := prefs.Translator()

	p, err := load(ctx)
	if err != nil {
		return err
	}
	currency := p.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	ctx.Println(tr.T("profile.personalInfo"))
	ctx.Printf("  %-20s %s\n", tr.T("profile.name")+":", p.Name)
	if quit, err := ctx.Store.GetQuitDate(); err == nil {
		ctx.Printf("  %-20s %s\n", tr.T("profile.quitDate")+":", quit.In(ctx.Location()).Format("2006-01-02 15:04"))
	}
	ctx.Printf("  %-20s %d\n", tr.T("profile.cigarettesPerDay")+":", p.CigarettesPerDay)
	ctx.Printf("  %-20s %d\n", tr.T("profile.cigarettesPerPack")+":", p.CigarettesPerPack)
	ctx.Printf("  %-20s %s%.2f\n", tr.T("profile.pricePerPack")+":", currency, p.PricePerPack)
	ctx.Printf("  %-20s %g\n", tr.T("profile.smokingYears")+":", p.SmokingYears)

	ctx.Printf("\n%s\n", tr.T("profile.goals"))
	if len(p.Goals) == 0 {
		ctx.Printf("  %s\n", tr.T("profile.noGoals"))
	}
	for i, g := range p.Goals {
		ctx.Printf("  %d. %s\n", i+1, g)
	}
	return nil
}

type ProfileSetCmd struct {
	Name              *string  `help:"Display name."`
	CigarettesPerDay  *int     `help:"Cigarettes smoked per day before quitting."`
	CigarettesPerPack *int     `help:"Cigarettes in one pack."`
	PricePerPack      *float64 `help:"Price of one pack."`
	Currency          *string  `help:"Currency symbol."`
	SmokingYears      *float64 `help:"Years smoked."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetProfile()
	if errors.Is(err, storage.ErrNotFound) {
		p = models.SmokingProfile{
			CigarettesPerPack: constants.DefaultCigarettesPerPack,
			Currency:          constants.DefaultCurrency,
			Goals:             []string{},
		}
	} else if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	updated := false
	if c.Name != nil {
		p.Name = strings.TrimSpace(*c.Name)
		updated = true
	}
	if c.CigarettesPerDay != nil {
		p.CigarettesPerDay = *c.CigarettesPerDay
		updated = true
	}
	if c.CigarettesPerPack != nil {
		p.CigarettesPerPack = *c.CigarettesPerPack
		updated = true
	}
	if c.PricePerPack != nil {
		p.PricePerPack = *c.PricePerPack
		updated = true
	}
	if c.Currency != nil {
		if err := validation.ValidateChoice(*c.Currency, constants.Currencies); err != nil {
			return fmt.Errorf("currency must be one of %s: %w", strings.Join(constants.Currencies, " "), err)
		}
		p.Currency = *c.Currency
		updated = true
	}
	if c.SmokingYears != nil {
		p.SmokingYears = *c.SmokingYears
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use 'smokeless profile show' to view the profile or flags to update it.")
		return nil
	}

	if err := validation.ValidateProfile(p); err != nil {
		return err
	}
	if err := ctx.Store.SaveProfile(p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	ctx.Println("✓ Profile updated.")
	return nil
}

type GoalAddCmd struct {
	Goal []string `arg:"" help:"Goal text."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	goal := strings.TrimSpace(strings.Join(c.Goal, " "))
	if goal == "" {
		return errors.New("goal cannot be empty")
	}

	p, err := load(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(p.Goals, goal) {
		return fmt.Errorf("goal %q already exists", goal)
	}
	p.Goals = append(p.Goals, goal)

	if err := ctx.Store.SaveProfile(p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	ctx.Printf("✓ Goal added: %s\n", goal)
	return nil
}

type GoalRemoveCmd struct {
	Goal []string `arg:"" help:"Goal number (from 'profile show') or exact text."`
}

func (c *GoalRemoveCmd) Run(ctx *cli.Context) error {
	target := strings.TrimSpace(strings.Join(c.Goal, " "))

	p, err := load(ctx)
	if err != nil {
		return err
	}

	idx := slices.Index(p.Goals, target)
	if idx == -1 {
		var n int
		if _, err := fmt.Sscanf(target, "%d", &n); err == nil && fmt.Sprint(n) == target && n >= 1 && n <= len(p.Goals) {
			idx = n - 1
		}
	}
	if idx == -1 {
		return fmt.Errorf("goal not found: %s", target)
	}

	removed := p.Goals[idx]
	p.Goals = slices.Delete(p.Goals, idx, idx+1)
	if err := ctx.Store.SaveProfile(p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	ctx.Printf("✓ Goal removed: %s\n", removed)
	return nil
}
