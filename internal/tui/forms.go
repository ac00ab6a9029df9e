package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/utils"
	"github.com/julianstephens/smokeless/internal/validation"
)

var moodKeys = []string{
	"home.mood.awful",
	"home.mood.bad",
	"home.mood.okay",
	"home.mood.good",
	"home.mood.great",
}

// moodLabel translates a 1..5 mood score.
func moodLabel(tr *i18n.Translator, mood int) string {
	if mood < constants.MinMood || mood > constants.MaxMood {
		return strconv.Itoa(mood)
	}
	return tr.T(moodKeys[mood-constants.MinMood])
}

func positiveNumber(s string) error {
	_, err := validation.ParsePositiveFloat(s)
	return err
}

func newLogForm(fm *LogFormModel, tr *i18n.Translator, theme string) *huh.Form {
	moods := make([]huh.Option[int], 0, constants.MaxMood)
	for mood := constants.MaxMood; mood >= constants.MinMood; mood-- {
		moods = append(moods, huh.NewOption(moodLabel(tr, mood), mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(tr.T("home.mood.title")).
				Options(moods...).
				Value(&fm.Mood),
			huh.NewInput().
				Title(tr.T("home.log.cravings")).
				Value(&fm.Cravings).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return fmt.Errorf("cravings must be zero or more")
					}
					return nil
				}),
			huh.NewText().
				Title(tr.T("home.log.notes")).
				Value(&fm.Notes),
		).Title(tr.T("home.log.title")),
	).WithTheme(formTheme(theme))
}

func newProfileForm(fm *ProfileFormModel, tr *i18n.Translator, theme string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(tr.T("profile.name")).
				Value(&fm.Name),
			huh.NewInput().
				Title(tr.T("profile.cigarettesPerDay")).
				Value(&fm.CigarettesPerDay).
				Validate(func(s string) error {
					_, err := validation.ParsePositiveInt(s)
					return err
				}),
			huh.NewInput().
				Title(tr.T("profile.cigarettesPerPack")).
				Value(&fm.CigarettesPerPack).
				Validate(func(s string) error {
					_, err := validation.ParsePositiveInt(s)
					return err
				}),
			huh.NewInput().
				Title(tr.T("profile.pricePerPack")).
				Value(&fm.PricePerPack).
				Validate(positiveNumber),
			huh.NewSelect[string]().
				Title(tr.T("onboarding.packPrice.currency")).
				Options(huh.NewOptions(constants.Currencies...)...).
				Value(&fm.Currency),
			huh.NewInput().
				Title(tr.T("profile.smokingYears")).
				Value(&fm.SmokingYears),
		).Title(tr.T("profile.personalInfo")),
	).WithTheme(formTheme(theme))
}

func newSettingsForm(fm *SettingsFormModel, tr *i18n.Translator, theme string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(tr.T("settings.language.title")).
				Description(tr.T("settings.language.message")).
				Options(huh.NewOptions(i18n.Languages()...)...).
				Value(&fm.Language),
			huh.NewSelect[string]().
				Title(tr.T("settings.theme.title")).
				Options(
					huh.NewOption(tr.T("settings.theme.light"), constants.ThemeLight),
					huh.NewOption(tr.T("settings.theme.dark"), constants.ThemeDark),
				).
				Value(&fm.Theme),
			huh.NewConfirm().
				Title(tr.T("settings.notifications")).
				Affirmative(tr.T("common.yes")).
				Negative(tr.T("common.no")).
				Value(&fm.NotificationsEnabled),
			huh.NewInput().
				Title(tr.T("settings.timezone.title")).
				Description(tr.T("settings.timezone.description")).
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(strings.TrimSpace(s)) {
						return errors.New(tr.T("settings.timezone.invalid"))
					}
					return nil
				}),
		).Title(tr.T("settings.title")),
	).WithTheme(formTheme(theme))
}
