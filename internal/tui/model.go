package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/feedback"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/progress"
	"github.com/julianstephens/smokeless/internal/storage"
	"github.com/julianstephens/smokeless/internal/utils"
	"github.com/julianstephens/smokeless/internal/watch"
)

// milestoneCheckInterval is how often the dashboard asks the watcher for
// newly reached milestones.
const milestoneCheckInterval = time.Minute

type Options struct {
	Store            storage.Provider
	Preferences      *i18n.Preferences
	Notifier         *feedback.Notifier
	CalculatingDelay time.Duration
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
	// ForceOnboarding starts the questionnaire even when it was completed.
	ForceOnboarding bool
}

type LogFormModel struct {
	Cravings string
	Mood     int
	Notes    string
}

type ProfileFormModel struct {
	Name              string
	CigarettesPerDay  string
	CigarettesPerPack string
	PricePerPack      string
	Currency          string
	SmokingYears      string
}

type SettingsFormModel struct {
	Language             string
	Theme                string
	NotificationsEnabled bool
	Timezone             string
}

type Model struct {
	store    storage.Provider
	prefs    *i18n.Preferences
	notifier *feedback.Notifier
	watcher  *watch.Watcher
	now      func() time.Time
	delay    time.Duration

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	wizard        *wizard

	cache snapshotCache
	snap  progress.Snapshot
	logs  []models.DailyLog

	form         *huh.Form
	logForm      *LogFormModel
	profileForm  *ProfileFormModel
	settingsForm *SettingsFormModel

	formError string
	status    string
	quitting  bool
	width     int
	height    int
}

// New builds the root model. It opens the onboarding wizard when onboarding
// was never completed or opts.ForceOnboarding is set, and the dashboard
// otherwise.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, errors.New("tui requires a store")
	}
	if opts.Preferences == nil {
		return Model{}, errors.New("tui requires preferences")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Notifier == nil {
		opts.Notifier = feedback.New(false)
	}
	if opts.CalculatingDelay <= 0 {
		opts.CalculatingDelay = constants.CalculatingDelay
	}

	tr := opts.Preferences.Translator()
	m := Model{
		store:    opts.Store,
		prefs:    opts.Preferences,
		notifier: opts.Notifier,
		watcher:  watch.New(opts.Store, opts.Notifier, tr.MilestoneTitle, milestoneCheckInterval, watch.WithClock(opts.Now)),
		now:      opts.Now,
		delay:    opts.CalculatingDelay,
		state:    constants.StateHome,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}

	completed, err := opts.Store.IsOnboardingCompleted()
	if err != nil {
		logger.Warn("Failed to read onboarding state, starting onboarding", "error", err)
	}
	if opts.ForceOnboarding || !completed {
		m.wizard = m.newWizard()
	}

	m.reload()
	return m, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHome:
		keys = append(keys, m.keys.LogCheckIn, m.keys.Reset)
		if !m.snap.Ready {
			keys = append(keys, m.keys.Onboard)
		}
	case constants.StateSettings:
		keys = append(keys, m.keys.EditSettings, m.keys.EditProfile, m.keys.Theme)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Left, m.keys.Right, m.keys.Quit, m.keys.Help}
	actions := []key.Binding{m.keys.LogCheckIn, m.keys.EditProfile, m.keys.Reset, m.keys.Onboard}
	settings := []key.Binding{m.keys.EditSettings, m.keys.Language, m.keys.Theme, m.keys.Notifications}
	return [][]key.Binding{global, actions, settings}
}

type tickMsg time.Time

type milestonesMsg struct {
	ids []string
	err error
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) checkMilestones() tea.Cmd {
	w := m.watcher
	return func() tea.Msg {
		ids, err := w.Check()
		return milestonesMsg{ids: ids, err: err}
	}
}

type milestoneTickMsg struct{}

func scheduleMilestoneCheck() tea.Cmd {
	return tea.Tick(milestoneCheckInterval, func(time.Time) tea.Msg {
		return milestoneTickMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(), m.checkMilestones(), scheduleMilestoneCheck()}
	if m.wizard != nil {
		cmds = append(cmds, m.wizard.enter())
	}
	return tea.Batch(cmds...)
}

func (m Model) translator() *i18n.Translator {
	return m.prefs.Translator()
}

func (m Model) location() *time.Location {
	loc, err := utils.LoadLocation(m.prefs.Settings().Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// snapshotCache holds the last stored quit date and profile so the per-second
// refresh does not hit the store.
type snapshotCache struct {
	quit       time.Time
	quitErr    error
	profile    models.SmokingProfile
	profileErr error
}

func (c snapshotCache) GetQuitDate() (time.Time, error) {
	return c.quit, c.quitErr
}

func (c snapshotCache) GetProfile() (models.SmokingProfile, error) {
	return c.profile, c.profileErr
}

// reload reads the quit date, profile and recent check-ins from the store.
// Read errors are logged once here and then treated as missing data.
func (m *Model) reload() {
	quit, err := m.store.GetQuitDate()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Error("Failed to read quit date", "error", err)
		err = storage.ErrNotFound
	}
	m.cache.quit, m.cache.quitErr = quit, err

	profile, err := m.store.GetProfile()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Error("Failed to read smoking profile", "error", err)
		err = storage.ErrNotFound
	}
	m.cache.profile, m.cache.profileErr = profile, err

	start, end := utils.TrailingWindow(m.now().In(m.location()), constants.DailyLogWindowDays)
	logs, err := m.store.GetDailyLogsInRange(start, end)
	if err != nil {
		logger.Error("Failed to read daily logs", "error", err)
		logs = nil
	}
	m.logs = logs

	m.recompute()
}

func (m *Model) recompute() {
	m.snap = progress.LoadSnapshot(m.cache, m.now())
}
