package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smokeless/internal/backup"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/utils"
	"github.com/julianstephens/smokeless/internal/validation"
)

// dashboardTabs are the states reachable with tab, in display order.
var dashboardTabs = []constants.SessionState{
	constants.StateHome,
	constants.StateStats,
	constants.StateAchievements,
	constants.StateSettings,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.wizard != nil {
			m.wizard.bar.Width = min(msg.Width-4, 60)
		}
	case tickMsg:
		m.recompute()
		return m, tick()
	case milestoneTickMsg:
		return m, tea.Batch(m.checkMilestones(), scheduleMilestoneCheck())
	case milestonesMsg:
		if msg.err != nil {
			logger.Error("Milestone check failed", "error", msg.err)
		}
		if len(msg.ids) > 0 {
			titles := make([]string, 0, len(msg.ids))
			for _, id := range msg.ids {
				titles = append(titles, m.translator().MilestoneTitle(id))
			}
			m.status = "🏆 " + strings.Join(titles, ", ")
		}
		return m, nil
	}

	if m.wizard != nil {
		return m.updateWizard(msg)
	}

	switch m.state {
	case constants.StateLogCraving, constants.StateEditProfile, constants.StateEditSettings:
		return m.updateForm(msg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
		m.state = cycleTab(m.state, 1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
		m.state = cycleTab(m.state, -1)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.LogCheckIn):
		return m.openLogForm()
	case key.Matches(msg, m.keys.EditProfile):
		return m.openProfileForm()
	case key.Matches(msg, m.keys.Reset):
		if !m.snap.Ready {
			return m, nil
		}
		m.enter(constants.StateConfirmReset)
		return m, nil
	case key.Matches(msg, m.keys.Onboard):
		if m.snap.Ready {
			return m, nil
		}
		return m, m.startWizard()
	}

	if m.state == constants.StateSettings {
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func cycleTab(current constants.SessionState, step int) constants.SessionState {
	for i, s := range dashboardTabs {
		if s == current {
			n := len(dashboardTabs)
			return dashboardTabs[((i+step)%n+n)%n]
		}
	}
	return constants.StateHome
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.EditSettings):
		return m.openSettingsForm()
	case key.Matches(msg, m.keys.Language):
		err = m.prefs.SetLanguage(nextLanguage(m.prefs.Settings().Language))
	case key.Matches(msg, m.keys.Theme):
		err = m.prefs.ToggleTheme()
	case key.Matches(msg, m.keys.Notifications):
		err = m.prefs.SetNotificationsEnabled(!m.prefs.Settings().NotificationsEnabled)
	default:
		return m, nil
	}

	if err != nil {
		m.formError = err.Error()
		return m, nil
	}
	m.formError = ""
	m.notifier.NotifyInteraction()
	return m, nil
}

func nextLanguage(current string) string {
	langs := i18n.Languages()
	for i, l := range langs {
		if l == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return constants.DefaultLanguage
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.state = m.previousState
		if err := m.resetProgress(); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.status = m.translator().T("settings.reset.confirm")
		// tracking starts over with the questionnaire
		m.state = constants.StateHome
		return m, m.startWizard()
	case "n", "N", "esc":
		m.state = m.previousState
	}
	return m, nil
}

// resetProgress backs up a SQLite database and then wipes all progress.
// Settings survive.
func (m *Model) resetProgress() error {
	backup.CreateAutomatic(m.store.GetConfigPath())
	if err := m.store.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	logger.Info("Progress reset from dashboard")
	m.watcher.Reset()
	m.reload()
	return nil
}

// startWizard opens the onboarding questionnaire over the dashboard.
func (m *Model) startWizard() tea.Cmd {
	m.wizard = m.newWizard()
	if m.width > 0 {
		m.wizard.bar.Width = min(m.width-4, 60)
	}
	return m.wizard.enter()
}

func (m Model) openLogForm() (tea.Model, tea.Cmd) {
	m.logForm = &LogFormModel{Cravings: "0", Mood: 3}
	m.form = newLogForm(m.logForm, m.translator(), m.prefs.Settings().Theme)
	m.enter(constants.StateLogCraving)
	return m, m.form.Init()
}

func (m Model) openProfileForm() (tea.Model, tea.Cmd) {
	p := m.cache.profile
	fm := &ProfileFormModel{
		Name:              p.Name,
		CigarettesPerPack: strconv.Itoa(constants.DefaultCigarettesPerPack),
		Currency:          constants.DefaultCurrency,
	}
	if m.cache.profileErr == nil {
		fm.CigarettesPerDay = strconv.Itoa(p.CigarettesPerDay)
		fm.CigarettesPerPack = strconv.Itoa(p.CigarettesPerPack)
		fm.PricePerPack = strconv.FormatFloat(p.PricePerPack, 'f', -1, 64)
		fm.SmokingYears = strconv.FormatFloat(p.SmokingYears, 'f', -1, 64)
		if p.Currency != "" {
			fm.Currency = p.Currency
		}
	}
	m.profileForm = fm
	m.form = newProfileForm(fm, m.translator(), m.prefs.Settings().Theme)
	m.enter(constants.StateEditProfile)
	return m, m.form.Init()
}

func (m Model) openSettingsForm() (tea.Model, tea.Cmd) {
	s := m.prefs.Settings()
	m.settingsForm = &SettingsFormModel{
		Language:             s.Language,
		Theme:                s.Theme,
		NotificationsEnabled: s.NotificationsEnabled,
		Timezone:             s.Timezone,
	}
	m.form = newSettingsForm(m.settingsForm, m.translator(), s.Theme)
	m.enter(constants.StateEditSettings)
	return m, m.form.Init()
}

func isTab(s constants.SessionState) bool {
	for _, t := range dashboardTabs {
		if t == s {
			return true
		}
	}
	return false
}

// enter switches to a form or confirmation state, remembering the tab to
// return to.
func (m *Model) enter(s constants.SessionState) {
	if isTab(m.state) {
		m.previousState = m.state
	}
	m.formError = ""
	m.state = s
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var err error
		switch m.state {
		case constants.StateLogCraving:
			err = m.saveLogForm()
		case constants.StateEditProfile:
			err = m.saveProfileForm()
		case constants.StateEditSettings:
			err = m.saveSettingsForm()
		}
		if err != nil {
			// stay in the form so the user can fix the value
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.notifier.NotifyInteraction()
		m.state = m.previousState
	case huh.StateAborted:
		m.formError = ""
		m.state = m.previousState
	}
	return m, cmd
}

func (m *Model) saveLogForm() error {
	cravings, err := strconv.Atoi(strings.TrimSpace(m.logForm.Cravings))
	if err != nil {
		return fmt.Errorf("%w: cravings must be a number", validation.ErrInvalidDailyLog)
	}
	log := models.DailyLog{
		Date:     utils.DayKey(m.now().In(m.location())),
		Cravings: cravings,
		Mood:     m.logForm.Mood,
		Notes:    strings.TrimSpace(m.logForm.Notes),
	}
	if err := m.store.SaveDailyLog(log); err != nil {
		return err
	}
	m.status = "✓ " + m.translator().T("home.log.saved")
	m.reload()
	return nil
}

func (m *Model) saveProfileForm() error {
	fm := m.profileForm
	perDay, err := validation.ParsePositiveInt(fm.CigarettesPerDay)
	if err != nil {
		return err
	}
	perPack, err := validation.ParsePositiveInt(fm.CigarettesPerPack)
	if err != nil {
		return err
	}
	price, err := validation.ParsePositiveFloat(fm.PricePerPack)
	if err != nil {
		return err
	}
	years := 0.0
	if s := strings.TrimSpace(fm.SmokingYears); s != "" {
		if years, err = strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err != nil {
			return fmt.Errorf("%w: years smoked must be a number", validation.ErrInvalidProfile)
		}
	}

	goals := m.cache.profile.Goals
	if goals == nil {
		goals = []string{}
	}
	profile := models.SmokingProfile{
		Name:              strings.TrimSpace(fm.Name),
		CigarettesPerDay:  perDay,
		PricePerPack:      price,
		CigarettesPerPack: perPack,
		SmokingYears:      years,
		Goals:             goals,
		Currency:          fm.Currency,
	}
	if err := m.store.SaveProfile(profile); err != nil {
		return err
	}
	m.reload()
	return nil
}

func (m *Model) saveSettingsForm() error {
	fm := m.settingsForm
	current := m.prefs.Settings()

	if fm.Timezone != current.Timezone {
		if err := m.prefs.SetTimezone(strings.TrimSpace(fm.Timezone)); err != nil {
			return err
		}
	}
	if fm.Language != current.Language {
		if err := m.prefs.SetLanguage(fm.Language); err != nil {
			return err
		}
	}
	if fm.Theme != current.Theme {
		if err := m.prefs.SetTheme(fm.Theme); err != nil {
			return err
		}
	}
	if fm.NotificationsEnabled != current.NotificationsEnabled {
		if err := m.prefs.SetNotificationsEnabled(fm.NotificationsEnabled); err != nil {
			return err
		}
	}
	m.reload()
	return nil
}
