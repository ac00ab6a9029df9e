package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/progress"
	"github.com/julianstephens/smokeless/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
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

	currency := snap.Profile.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	if snap.Profile.Name != "" {
		ctx.Printf("%s, %s\n\n", tr.T("home.welcomeBack"), snap.Profile.Name)
	}
	ctx.Printf("  %-24s %d\n", tr.T("stats.daysSince")+":", snap.Stats.DaysSince)
	ctx.Printf("  %-24s %s%.2f\n", tr.T("stats.moneySaved")+":", currency, snap.Stats.MoneySaved)
	ctx.Printf("  %-24s %d\n", tr.T("stats.cigarettesNotSmoked")+":", snap.Stats.CigarettesNotSmoked)
	ctx.Printf("  %-24s %.1f %s\n", tr.T("stats.timeRegained")+":", snap.Stats.TimeRegainedHours, tr.T("stats.time.hours"))
	ctx.Printf("  %-24s %s\n", tr.T("home.stats.smokeFreeTime")+":", utils.FormatCountdown(snap.Now.Sub(snap.Quit)))

	ctx.Println()
	ctx.Printf("%s: %d/%d\n", tr.T("achievements.title"), progress.CountUnlocked(snap.Achievements), len(snap.Achievements))
	if next, remaining, ok := progress.NextBenefit(snap.Quit, snap.Now, progress.Benefits()); ok {
		ctx.Printf("%s %s: %s\n", tr.T("stats.nextBenefit"), utils.FormatCountdown(remaining), tr.MilestoneTitle(next.ID))
	}

	if quote := quoteOfTheDay(tr.Lines("home.quotes"), snap.Now.In(ctx.Location())); quote != "" {
		ctx.Printf("\n%s: %q\n", tr.T("home.quoteOfTheDay"), quote)
	}
	return nil
}

func quoteOfTheDay(quotes []string, now time.Time) string {
	if len(quotes) == 0 {
		return ""
	}
	return quotes[utils.DailyIndex(now, len(quotes))]
}

// formatPercent renders a 0..100 progress value.
func formatPercent(p float64) string {
	return fmt.Sprintf("%3.0f%%", p)
}
