package tracker

import (
	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/progress"
)

type AchievementsCmd struct {
	Category string `help:"Only show one category." enum:"all,money,cigarettes,days" default:"all"`
	Unlocked bool   `help:"Only show unlocked achievements."`
}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
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

	ctx.Printf("%s (%d/%d)\n", tr.T("achievements.title"), progress.CountUnlocked(snap.Achievements), len(snap.Achievements))

	var current constants.AchievementCategory
	for _, a := range snap.Achievements {
		if c.Category != "" && c.Category != "all" && string(a.Category) != c.Category {
			continue
		}
		if c.Unlocked && !a.Unlocked {
			continue
		}
		if a.Category != current {
			current = a.Category
			ctx.Printf("\n%s\n", tr.T("achievements.categories."+string(a.Category)))
		}

		mark := "·"
		if a.Unlocked {
			mark = "✓"
		}
		ctx.Printf("  %s %s %-22s %s\n", mark, formatPercent(a.ProgressPercent), tr.MilestoneTitle(a.ID), tr.T("achievements."+a.ID+".description"))
	}
	return nil
}
