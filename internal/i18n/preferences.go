package i18n

import (
	"fmt"
	"sync"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/logger"
	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/utils"
)

// SettingsStore is the slice of storage.Provider that preferences need.
type SettingsStore interface {
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error
}

// Preferences holds the process-wide language, theme and notification
// choices. It is loaded once at launch and persists every change.
type Preferences struct {
	mu         sync.RWMutex
	store      SettingsStore
	settings   models.Settings
	translator *Translator
	listeners  []func(models.Settings)
}

// LoadPreferences reads settings from store, falling back to defaults when
// they cannot be read.
func LoadPreferences(store SettingsStore, translator *Translator) *Preferences {
	settings, err := store.GetSettings()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", "error", err)
		settings = models.DefaultSettings()
	}
	models.ApplyDefaultSettings(&settings)

	if err := translator.SetLanguage(settings.Language); err != nil {
		logger.Warn("Stored language is not supported, using default", "language", settings.Language)
		settings.Language = constants.DefaultLanguage
		_ = translator.SetLanguage(settings.Language)
	}
	settings.Language = translator.Language()

	return &Preferences{
		store:      store,
		settings:   settings,
		translator: translator,
	}
}

func (p *Preferences) Settings() models.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

func (p *Preferences) Translator() *Translator {
	return p.translator
}

// OnChange registers fn to run after every successful update.
func (p *Preferences) OnChange(fn func(models.Settings)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *Preferences) SetLanguage(lang string) error {
	code, err := normalizeLanguage(lang)
	if err != nil {
		return err
	}
	return p.update(func(s *models.Settings) { s.Language = code }, func() {
		_ = p.translator.SetLanguage(code)
	})
}

func (p *Preferences) SetTheme(theme string) error {
	if theme != constants.ThemeLight && theme != constants.ThemeDark {
		return fmt.Errorf("unsupported theme %q (expected %s or %s)", theme, constants.ThemeLight, constants.ThemeDark)
	}
	return p.update(func(s *models.Settings) { s.Theme = theme }, nil)
}

// ToggleTheme flips between light and dark.
func (p *Preferences) ToggleTheme() error {
	if p.Settings().Theme == constants.ThemeDark {
		return p.SetTheme(constants.ThemeLight)
	}
	return p.SetTheme(constants.ThemeDark)
}

func (p *Preferences) SetTimezone(tz string) error {
	if !utils.ValidateTimezone(tz) {
		return fmt.Errorf("unknown timezone %q", tz)
	}
	return p.update(func(s *models.Settings) { s.Timezone = tz }, nil)
}

func (p *Preferences) SetNotificationsEnabled(enabled bool) error {
	return p.update(func(s *models.Settings) { s.NotificationsEnabled = enabled }, nil)
}

// update saves the modified settings, then runs commit and the listeners.
func (p *Preferences) update(apply func(*models.Settings), commit func()) error {
	p.mu.Lock()
	next := p.settings
	apply(&next)
	if err := p.store.SaveSettings(next); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("failed to save settings: %w", err)
	}
	p.settings = next
	listeners := append([]func(models.Settings){}, p.listeners...)
	p.mu.Unlock()

	if commit != nil {
		commit()
	}

	for _, fn := range listeners {
		fn(next)
	}
	return nil
}
