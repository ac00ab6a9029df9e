package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/i18n"
	"github.com/julianstephens/smokeless/internal/onboarding"
)

const quitDateLayout = "2006-01-02 15:04"

// calculationDoneMsg reports the end of a wait on the Calculating step.
type calculationDoneMsg struct {
	step onboarding.Step
	err  error
}

// stepInput holds the form values for the current step.
type stepInput struct {
	Text     string
	Choice   string
	Choices  []string
	Currency string
}

// wizard renders the onboarding flow one step at a time.
type wizard struct {
	flow    *onboarding.Flow
	tr      *i18n.Translator
	theme   string
	now     func() time.Time
	shown   onboarding.Step
	form    *huh.Form
	input   *stepInput
	spinner spinner.Model
	bar     bprogress.Model
	err     string
}

func (m Model) newWizard() *wizard {
	w := &wizard{
		flow: onboarding.New(
			onboarding.WithClock(m.now),
			onboarding.WithCalculatingDelay(m.delay),
			onboarding.WithFeedback(m.notifier),
		),
		tr:      m.translator(),
		theme:   m.prefs.Settings().Theme,
		now:     m.now,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		bar:     bprogress.New(bprogress.WithDefaultGradient(), bprogress.WithoutPercentage()),
	}
	w.rebuild()
	return w
}

// rebuild refreshes the input and form for the flow's current step,
// prefilled from the draft so going back shows earlier answers.
func (w *wizard) rebuild() {
	step := w.flow.Current()
	w.shown = step
	w.input = inputFromDraft(step, w.flow.Draft(), w.now())
	w.form = w.newForm(step)
}

// enter returns the command the current step needs once it is shown.
func (w *wizard) enter() tea.Cmd {
	if w.shown == onboarding.StepCalculating {
		return tea.Batch(w.await(), w.spinner.Tick)
	}
	if w.form != nil {
		return w.form.Init()
	}
	return nil
}

func (w *wizard) await() tea.Cmd {
	flow := w.flow
	return func() tea.Msg {
		step, err := flow.AwaitCalculation(context.Background())
		return calculationDoneMsg{step: step, err: err}
	}
}

func inputFromDraft(step onboarding.Step, d onboarding.Draft, now time.Time) *stepInput {
	in := &stepInput{Currency: d.Currency}
	if in.Currency == "" {
		in.Currency = constants.DefaultCurrency
	}

	switch step {
	case onboarding.StepName:
		in.Text = d.Name
	case onboarding.StepGender:
		in.Choice = d.Gender
	case onboarding.StepBirthYear:
		if d.BirthYear > 0 {
			in.Text = strconv.Itoa(d.BirthYear)
		}
	case onboarding.StepMotivation:
		in.Choice = d.Motivation
	case onboarding.StepFears:
		in.Choices = append([]string(nil), d.Fears...)
	case onboarding.StepQuitTime:
		in.Choice = d.QuitTime
	case onboarding.StepQuitDate:
		t := d.QuitDate
		if t.IsZero() {
			t = now
		}
		in.Text = t.Format(quitDateLayout)
	case onboarding.StepStartAge:
		in.Choice = d.StartAge
	case onboarding.StepQuitAttempts:
		in.Choice = d.QuitAttempts
	case onboarding.StepQuitChallenges:
		in.Choices = append([]string(nil), d.QuitChallenges...)
	case onboarding.StepCigarettesPerDay:
		if d.CigarettesPerDay > 0 {
			in.Text = strconv.Itoa(d.CigarettesPerDay)
		}
	case onboarding.StepCigarettesPerPack:
		n := d.CigarettesPerPack
		if n <= 0 {
			n = constants.DefaultCigarettesPerPack
		}
		in.Text = strconv.Itoa(n)
	case onboarding.StepPackPrice:
		if d.PackPrice > 0 {
			in.Text = strconv.FormatFloat(d.PackPrice, 'f', -1, 64)
		}
	}
	return in
}

// answerFor turns the form values into the flow's answer for step.
func answerFor(step onboarding.Step, in *stepInput) onboarding.Answer {
	switch step {
	case onboarding.StepFears, onboarding.StepQuitChallenges:
		return onboarding.Choices(in.Choices...)
	case onboarding.StepPackPrice:
		return onboarding.Price(in.Text, in.Currency)
	case onboarding.StepGender, onboarding.StepMotivation, onboarding.StepQuitTime,
		onboarding.StepStartAge, onboarding.StepQuitAttempts:
		return onboarding.Text(in.Choice)
	case onboarding.StepName, onboarding.StepBirthYear, onboarding.StepQuitDate,
		onboarding.StepCigarettesPerDay, onboarding.StepCigarettesPerPack:
		return onboarding.Text(in.Text)
	}
	return onboarding.None()
}

func (w *wizard) key(step onboarding.Step, suffix string) string {
	return "onboarding." + string(step) + "." + suffix
}

func (w *wizard) options(step onboarding.Step) []huh.Option[string] {
	ids := onboarding.Options(step)
	opts := make([]huh.Option[string], 0, len(ids))
	for _, id := range ids {
		opts = append(opts, huh.NewOption(w.tr.T(w.key(step, "options."+id)), id))
	}
	return opts
}

func (w *wizard) textInput(step onboarding.Step) *huh.Input {
	return huh.NewInput().
		Title(w.tr.T(w.key(step, "question"))).
		Placeholder(w.tr.T(w.key(step, "placeholder"))).
		Value(&w.input.Text)
}

// newForm builds the form for step, or nil for display-only steps.
func (w *wizard) newForm(step onboarding.Step) *huh.Form {
	var group *huh.Group

	switch step {
	case onboarding.StepName, onboarding.StepBirthYear, onboarding.StepQuitDate,
		onboarding.StepCigarettesPerDay, onboarding.StepCigarettesPerPack:
		group = huh.NewGroup(w.textInput(step))
	case onboarding.StepGender, onboarding.StepMotivation, onboarding.StepStartAge, onboarding.StepQuitAttempts:
		group = huh.NewGroup(
			huh.NewSelect[string]().
				Title(w.tr.T(w.key(step, "question"))).
				Options(w.options(step)...).
				Value(&w.input.Choice),
		)
	case onboarding.StepQuitTime:
		group = huh.NewGroup(
			huh.NewSelect[string]().
				Title(w.tr.Tf(w.key(step, "question"), w.flow.Draft().Name)).
				Options(w.options(step)...).
				Value(&w.input.Choice),
		)
	case onboarding.StepFears:
		group = huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(w.tr.T(w.key(step, "question"))).
				Description(w.tr.T(w.key(step, "hint"))).
				Options(w.options(step)...).
				Limit(onboarding.MaxFears).
				Value(&w.input.Choices),
		)
	case onboarding.StepQuitChallenges:
		group = huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(w.tr.T(w.key(step, "question"))).
				Options(w.options(step)...).
				Value(&w.input.Choices),
		)
	case onboarding.StepPackPrice:
		group = huh.NewGroup(
			w.textInput(step),
			huh.NewSelect[string]().
				Title(w.tr.T(w.key(step, "currency"))).
				Options(huh.NewOptions(constants.Currencies...)...).
				Value(&w.input.Currency),
		)
	default:
		return nil
	}

	return huh.NewForm(group).WithTheme(formTheme(w.theme)).WithShowHelp(true)
}

func (m Model) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := m.wizard

	switch msg := msg.(type) {
	case calculationDoneMsg:
		// the timer can fire before the wait starts
		if w.flow.Current() == w.shown {
			return m, nil
		}
		w.rebuild()
		return m, w.enter()

	case spinner.TickMsg:
		if w.shown != onboarding.StepCalculating {
			return m, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			w.flow.Cancel()
			m.quitting = true
			return m, tea.Quit
		case "esc":
			w.flow.Back()
			w.err = ""
			w.rebuild()
			return m, w.enter()
		}
		if w.form == nil {
			if msg.String() == "enter" {
				return m.advanceWizard(onboarding.None())
			}
			return m, nil
		}
	}

	if w.form == nil {
		return m, nil
	}
	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}
	if w.form.State == huh.StateCompleted {
		return m.advanceWizard(answerFor(w.shown, w.input))
	}
	return m, cmd
}

func (m Model) advanceWizard(answer onboarding.Answer) (tea.Model, tea.Cmd) {
	w := m.wizard
	if w.flow.Current() == onboarding.StepAchievement {
		return m.finishOnboarding()
	}

	if _, err := w.flow.Advance(answer); err != nil {
		w.err = err.Error()
		// keep the typed values and show the same step again
		w.form = w.newForm(w.flow.Current())
		return m, w.enter()
	}
	w.err = ""
	w.rebuild()
	return m, w.enter()
}

func (m Model) finishOnboarding() (tea.Model, tea.Cmd) {
	w := m.wizard
	if _, _, err := w.flow.Finalize(m.store); err != nil {
		w.err = err.Error()
		return m, nil
	}

	m.wizard = nil
	m.state = constants.StateHome
	m.status = "✓ " + m.translator().T("onboarding.achievement.title")
	m.watcher.Reset()
	m.reload()
	return m, m.checkMilestones()
}

func (m Model) viewWizard() string {
	w := m.wizard
	st := newThemeStyles(w.theme)
	step := w.shown

	percent := float64(onboarding.Index(step)) / float64(len(onboarding.Steps)-1)
	parts := []string{w.bar.ViewAs(percent), ""}

	if w.form != nil {
		parts = append(parts, w.form.View())
	} else {
		parts = append(parts, w.viewStep(step, st))
	}

	if w.err != "" {
		parts = append(parts, "", dangerStyle.Render("❌ "+w.err))
	}

	hint := fmt.Sprintf("esc: %s", w.tr.T("common.back"))
	if w.form == nil && step != onboarding.StepCalculating {
		label := w.tr.T("common.continue")
		if step == onboarding.StepAchievement {
			label = w.tr.T("common.save")
		}
		hint = fmt.Sprintf("enter: %s • %s", label, hint)
	}
	parts = append(parts, "", st.muted.Render(hint))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (w *wizard) viewStep(step onboarding.Step, st themeStyles) string {
	tr := w.tr
	var lines []string

	switch step {
	case onboarding.StepWelcome:
		lines = append(lines, st.title.Render(tr.T("onboarding.welcome.title")))
		lines = append(lines, tr.Lines("onboarding.welcome.messages")...)
		for _, b := range tr.Lines("onboarding.welcome.bubbles") {
			lines = append(lines, st.quote.Render("💬 "+b))
		}

	case onboarding.StepMotivationCards:
		lines = append(lines, st.title.Render(tr.T("onboarding.motivationCards.title")))
		for _, fear := range w.flow.Draft().Fears {
			key := "onboarding.motivationCards.cards." + fear
			lines = append(lines,
				st.value.Render(tr.T(key+".main")),
				successStyle.Render(tr.T(key+".highlight")),
				"",
			)
		}

	case onboarding.StepQuitPreparation:
		lines = append(lines, tr.T("onboarding.quitPreparation.description"), "")
		for i, s := range tr.Lines("onboarding.quitPreparation.steps") {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, s))
		}

	case onboarding.StepCalculating:
		lines = append(lines, w.spinner.View()+" "+tr.T("onboarding.calculating.text"))

	case onboarding.StepResults:
		r := onboarding.CalculateResults(w.flow.Draft())
		lines = append(lines,
			st.title.Render(tr.T("onboarding.results.header")),
			fmt.Sprintf("%s %s", st.label.Render(tr.T("onboarding.results.savings")+":"), st.value.Render(fmt.Sprintf("%s%.2f", r.Currency, r.AnnualSavings))),
			fmt.Sprintf("%s %s", st.label.Render(tr.T("onboarding.results.cigarettes")+":"), st.value.Render(strconv.Itoa(r.CigarettesNotSmokedPerYear))),
			fmt.Sprintf("%s %s", st.label.Render(tr.T("onboarding.results.time")+":"), st.value.Render(fmt.Sprintf("%.1f %s", r.DaysOfTimeSaved, tr.T("onboarding.results.days")))),
			fmt.Sprintf("%s %s", st.label.Render(tr.T("onboarding.results.water")+":"), st.value.Render(fmt.Sprintf("%d %s", r.LitersOfWaterSaved, tr.T("onboarding.results.liters")))),
		)

	case onboarding.StepAchievement:
		quit := w.flow.Draft().QuitRecord(w.now()).QuitTimestamp
		lines = append(lines,
			st.title.Render("🏆 "+tr.T("onboarding.achievement.title")),
			tr.T("onboarding.achievement.description"),
			st.quote.Render(tr.Tf("onboarding.achievement.share", quit.Format(constants.DateFormat))),
		)
	}

	return strings.Join(lines, "\n")
}
