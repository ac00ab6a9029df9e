package logs

import (
	"fmt"
	"strings"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/utils"
)

type LogCmd struct {
	Add  LogAddCmd  `cmd:"" help:"Record a daily check-in."`
	List LogListCmd `cmd:"" help:"List recent check-ins." default:"1"`
}

type LogAddCmd struct {
	Cravings int    `help:"Number of cravings today." default:"0"`
	Mood     int    `help:"Mood from 1 (awful) to 5 (great)." required:""`
	Notes    string `help:"Free-form notes."`
	Date     string `help:"Day to record (YYYY-MM-DD). Defaults to today."`
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = utils.DayKey(ctx.Clock().In(ctx.Location()))
	}

	log := models.DailyLog{
		Date:     date,
		Cravings: c.Cravings,
		Mood:     c.Mood,
		Notes:    strings.TrimSpace(c.Notes),
	}
	if err := ctx.Store.SaveDailyLog(log); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}

	ctx.Printf("✓ Check-in saved for %s\n", date)
	return nil
}

type LogListCmd struct {
	Days int  `help:"Size of the trailing window in days." default:"7"`
	All  bool `help:"List every check-in."`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Preferences()
	if err != nil {
		return err
	}
	tr := prefs.Translator()

	var logs []models.DailyLog
	if c.All {
		logs, err = ctx.Store.GetDailyLogs()
	} else {
		days := c.Days
		if days <= 0 {
			days = constants.DailyLogWindowDays
		}
		start, end := utils.TrailingWindow(ctx.Clock().In(ctx.Location()), days)
		logs, err = ctx.Store.GetDailyLogsInRange(start, end)
	}
	if err != nil {
		return fmt.Errorf("failed to read check-ins: %w", err)
	}

	if len(logs) == 0 {
		ctx.Println(tr.T("home.log.empty"))
		return nil
	}

	ctx.Printf("%-10s  %-8s  %-10s  %s\n", "DATE", "CRAVINGS", "MOOD", "NOTES")
	for _, log := range logs {
		ctx.Printf("%-10s  %-8d  %-10s  %s\n", log.Date, log.Cravings, MoodLabel(tr.T, log.Mood), log.Notes)
	}
	return nil
}

var moodKeys = map[int]string{
	1: "home.mood.awful",
	2: "home.mood.bad",
	3: "home.mood.okay",
	4: "home.mood.good",
	5: "home.mood.great",
}

// MoodLabel translates a 1..5 mood score.
func MoodLabel(t func(string) string, mood int) string {
	if key, ok := moodKeys[mood]; ok {
		return t(key)
	}
	return fmt.Sprint(mood)
}
