package tracker

import (
	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/progress"
	"github.com/julianstephens/smokeless/internal/utils"
)

type BenefitsCmd struct{}

func (c *BenefitsCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}
	tr := prefs.Translator()

	snap := ctx.Snapshot()
	if !snap.Ready {
		ctx.Println(tr.T("home.noStats"))
		return nil
	}

	ctx.Println(tr.T("stats.benefits.title"))
	for _, b := range snap.Benefits {
		mark, state := "·", tr.T("stats.benefits.pending")
		if b.Achieved {
			mark, state = "✓", tr.T("stats.benefits.achieved")
		}
		ctx.Printf("  %s %-4s %-18s %-10s %s\n", mark, b.ID, tr.MilestoneTitle(b.ID), state, tr.T("stats.benefits."+b.ID+".description"))
	}

	if next, remaining, ok := progress.NextBenefit(snap.Quit, snap.Now, progress.Benefits()); ok {
		ctx.Printf("\n%s %s: %s\n", tr.T("stats.nextBenefit"), utils.FormatCountdown(remaining), tr.MilestoneTitle(next.ID))
	}
	return nil
}
