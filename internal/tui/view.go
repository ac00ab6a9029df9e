package tui

import (
	"fmt"
	"strings"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/progress"
	"github.com/julianstephens/smokeless/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.wizard != nil {
		return m.viewWizard()
	}

	st := newThemeStyles(m.prefs.Settings().Theme)

	var content string
	switch m.state {
	case constants.StateHome:
		content = m.viewHome(st)
	case constants.StateStats:
		content = m.viewStats(st)
	case constants.StateAchievements:
		content = m.viewAchievements(st)
	case constants.StateSettings:
		content = m.viewSettings(st)
	case constants.StateLogCraving, constants.StateEditProfile, constants.StateEditSettings:
		content = m.form.View()
	case constants.StateConfirmReset:
		content = m.viewConfirmReset()
	}

	var banner string
	switch {
	case m.formError != "":
		banner = dangerStyle.Render("❌ " + m.formError)
	case m.status != "":
		banner = successStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tr := m.translator()
	titles := map[constants.SessionState]string{
		constants.StateHome:         tr.T("home.title"),
		constants.StateStats:        tr.T("stats.title"),
		constants.StateAchievements: tr.T("achievements.title"),
		constants.StateSettings:     tr.T("settings.title"),
	}

	active := m.state
	if !isTab(active) {
		active = m.previousState
	}

	var tabs []string
	for _, s := range dashboardTabs {
		if s == active {
			tabs = append(tabs, activeTabStyle.Render(titles[s]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(titles[s]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) currency() string {
	if m.snap.Profile.Currency != "" {
		return m.snap.Profile.Currency
	}
	return constants.DefaultCurrency
}

func (m Model) viewHome(st themeStyles) string {
	tr := m.translator()
	if !m.snap.Ready {
		return lipgloss.JoinVertical(lipgloss.Left,
			st.title.Render(tr.T("home.welcome.title")),
			tr.T("home.welcome.subtitle"),
			"",
			st.muted.Render(tr.T("home.noStats")),
			st.muted.Render("o: "+tr.T("home.startQuitting")),
		)
	}

	greeting := tr.T("home.welcomeBack")
	if m.snap.Profile.Name != "" {
		greeting = fmt.Sprintf("%s, %s", greeting, m.snap.Profile.Name)
	}

	stats := m.snap.Stats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		st.card.Render(tr.T("home.stats.moneySaved")+"\n"+st.value.Render(fmt.Sprintf("%s%.2f", m.currency(), stats.MoneySaved))),
		st.card.Render(tr.T("home.stats.cigarettesNotSmoked")+"\n"+st.value.Render(fmt.Sprint(stats.CigarettesNotSmoked))),
		st.card.Render(tr.T("home.stats.smokeFreeTime")+"\n"+st.value.Render(utils.FormatCountdown(m.snap.Now.Sub(m.snap.Quit)))),
		st.card.Render(tr.T("home.stats.timeRegained")+"\n"+st.value.Render(fmt.Sprintf("%.1f %s", stats.TimeRegainedHours, tr.T("stats.time.hours")))),
	)

	parts := []string{st.title.Render(greeting), cards}

	if next, remaining, ok := progress.NextBenefit(m.snap.Quit, m.snap.Now, progress.Benefits()); ok {
		parts = append(parts, "", fmt.Sprintf("%s %s: %s",
			tr.T("stats.nextBenefit"), utils.FormatCountdown(remaining), st.value.Render(tr.MilestoneTitle(next.ID))))
	}

	if quotes := tr.Lines("home.quotes"); len(quotes) > 0 {
		quote := quotes[utils.DailyIndex(m.snap.Now.In(m.location()), len(quotes))]
		parts = append(parts, st.quote.Render(fmt.Sprintf("%s: %q", tr.T("home.quoteOfTheDay"), quote)))
	}

	parts = append(parts, "", st.title.Render(tr.T("home.log.recent")))
	if len(m.logs) == 0 {
		parts = append(parts, st.muted.Render(tr.T("home.log.empty")))
	}
	for _, log := range m.logs {
		line := fmt.Sprintf("%s  %-8s  %s: %d", log.Date, moodLabel(tr, log.Mood), tr.T("home.log.cravings"), log.Cravings)
		if log.Notes != "" {
			line += "  " + st.muted.Render(log.Notes)
		}
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewStats(st themeStyles) string {
	tr := m.translator()
	if !m.snap.Ready {
		return st.muted.Render(tr.T("home.noStats"))
	}

	stats := m.snap.Stats
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", st.label.Render(label+":"), st.value.Render(value))
	}

	parts := []string{
		st.title.Render(tr.T("stats.subtitle")),
		row(tr.T("stats.daysSince"), fmt.Sprint(stats.DaysSince)),
		row(tr.T("stats.moneySaved"), fmt.Sprintf("%s%.2f", m.currency(), stats.MoneySaved)),
		row(tr.T("stats.cigarettesNotSmoked"), fmt.Sprint(stats.CigarettesNotSmoked)),
		row(tr.T("stats.timeRegained"), fmt.Sprintf("%.1f %s", stats.TimeRegainedHours, tr.T("stats.time.hours"))),
		"",
		st.title.Render(tr.T("stats.benefits.title")),
	}

	for _, b := range m.snap.Benefits {
		mark, state := "○", st.muted.Render(tr.T("stats.benefits.pending"))
		if b.Achieved {
			mark, state = "✓", successStyle.Render(tr.T("stats.benefits.achieved"))
		}
		parts = append(parts, fmt.Sprintf("%s %s  %s", mark, st.value.Render(tr.MilestoneTitle(b.ID)), state))
		parts = append(parts, "   "+st.muted.Render(tr.T("stats.benefits."+b.ID+".description")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewAchievements(st themeStyles) string {
	tr := m.translator()
	if !m.snap.Ready {
		return st.muted.Render(tr.T("home.noStats"))
	}

	bar := bprogress.New(bprogress.WithDefaultGradient(), bprogress.WithWidth(24))
	parts := []string{
		st.title.Render(fmt.Sprintf("%s (%d/%d)", tr.T("achievements.subtitle"),
			progress.CountUnlocked(m.snap.Achievements), len(m.snap.Achievements))),
	}

	for i, a := range m.snap.Achievements {
		if i == 0 || a.Unlocked != m.snap.Achievements[i-1].Unlocked {
			header := tr.T("achievements.locked")
			if a.Unlocked {
				header = tr.T("achievements.unlocked")
			}
			parts = append(parts, "", st.value.Render(header))
		}
		line := achievementLine(a, tr.MilestoneTitle(a.ID), bar)
		parts = append(parts, line+"  "+st.muted.Render(tr.T("achievements.categories."+string(a.Category))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func achievementLine(a models.AchievementStatus, title string, bar bprogress.Model) string {
	mark := "🔒"
	if a.Unlocked {
		mark = "🏆"
	}
	return fmt.Sprintf("%s %-22s %s %3.0f%%", mark, title, bar.ViewAs(a.ProgressPercent/100), a.ProgressPercent)
}

func (m Model) viewSettings(st themeStyles) string {
	tr := m.translator()
	s := m.prefs.Settings()
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", st.label.Render(label+":"), st.value.Render(value))
	}
	yesNo := func(v bool) string {
		if v {
			return tr.T("common.yes")
		}
		return tr.T("common.no")
	}

	parts := []string{
		st.title.Render(tr.T("settings.sections.general")),
		row(tr.T("settings.language.title"), s.Language),
		row(tr.T("settings.theme.title"), tr.T("settings.theme."+s.Theme)),
		row(tr.T("settings.timezone.title"), s.Timezone),
		"",
		st.title.Render(tr.T("settings.sections.notifications")),
		row(tr.T("settings.notifications"), yesNo(s.NotificationsEnabled)),
		"",
		st.title.Render(tr.T("settings.profile")),
	}

	if m.cache.profileErr == nil {
		p := m.cache.profile
		parts = append(parts,
			row(tr.T("profile.name"), p.Name),
			row(tr.T("profile.cigarettesPerDay"), fmt.Sprint(p.CigarettesPerDay)),
			row(tr.T("profile.cigarettesPerPack"), fmt.Sprint(p.CigarettesPerPack)),
			row(tr.T("profile.pricePerPack"), fmt.Sprintf("%s%.2f", m.currency(), p.PricePerPack)),
			row(tr.T("profile.smokingYears"), fmt.Sprintf("%.0f", p.SmokingYears)),
		)
		goals := tr.T("profile.noGoals")
		if len(p.Goals) > 0 {
			goals = strings.Join(p.Goals, ", ")
		}
		parts = append(parts, row(tr.T("profile.goals"), goals))
	} else {
		parts = append(parts, st.muted.Render(tr.T("home.noStats")))
	}
	if m.cache.quitErr == nil {
		parts = append(parts, row(tr.T("profile.quitDate"), m.cache.quit.In(m.location()).Format("2006-01-02 15:04")))
	}

	parts = append(parts,
		"",
		st.title.Render(tr.T("settings.sections.about")),
		row(tr.T("settings.version"), constants.Version),
		"",
		dangerStyle.Render(tr.T("settings.sections.dangerZone")),
		"r: "+tr.T("settings.reset.title"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewConfirmReset() string {
	tr := m.translator()
	return lipgloss.Place(m.width, max(m.height-4, 0),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(tr.T("settings.reset.title")),
			tr.T("settings.reset.message"),
			"",
			warningStyle.Render("A backup is created before resetting."),
			"",
			"[y] "+tr.T("settings.reset.confirm"),
			"[n] "+tr.T("settings.reset.cancel"),
		),
	)
}
