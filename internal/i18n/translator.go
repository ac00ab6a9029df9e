package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/smokeless/internal/constants"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var localeFiles = map[string]string{
	constants.LanguageTR: "locales/tr.yaml",
	constants.LanguageEN: "locales/en.yaml",
}

// Translator resolves dot-separated paths against the active language tree.
// Unresolvable paths are returned as-is.
type Translator struct {
	mu    sync.RWMutex
	lang  string
	trees map[string]map[string]any
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{constants.LanguageTR, constants.LanguageEN}
}

func New(lang string) (*Translator, error) {
	trees := make(map[string]map[string]any, len(localeFiles))
	for code, file := range localeFiles {
		data, err := localeFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", code, err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", code, err)
		}
		trees[code] = tree
	}

	t := &Translator{trees: trees}
	if err := t.SetLanguage(lang); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

func normalizeLanguage(lang string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(lang))
	if _, ok := localeFiles[code]; !ok {
		return "", fmt.Errorf("unsupported language %q (expected one of %s)", lang, strings.Join(Languages(), ", "))
	}
	return code, nil
}

func (t *Translator) SetLanguage(lang string) error {
	code, err := normalizeLanguage(lang)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.lang = code
	t.mu.Unlock()
	return nil
}

// Lookup walks path through the active tree and returns whatever node it
// lands on: a string, a []any of lines, or a nested map.
func (t *Translator) Lookup(path string) (any, bool) {
	t.mu.RLock()
	var node any = t.trees[t.lang]
	t.mu.RUnlock()

	for _, key := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return node, node != nil
}

func (t *Translator) T(path string) string {
	v, ok := t.Lookup(path)
	if !ok {
		return path
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return path
	}
	return s
}

// Tf formats the translated string with args.
func (t *Translator) Tf(path string, args ...any) string {
	return fmt.Sprintf(t.T(path), args...)
}

// Lines returns a list node as strings. A string node yields a single line and
// an unresolvable path yields the path itself, mirroring T.
func (t *Translator) Lines(path string) []string {
	v, ok := t.Lookup(path)
	if !ok {
		return []string{path}
	}
	switch node := v.(type) {
	case []any:
		lines := make([]string, 0, len(node))
		for _, item := range node {
			lines = append(lines, fmt.Sprint(item))
		}
		return lines
	case string:
		return []string{node}
	default:
		return []string{path}
	}
}

// MilestoneTitle resolves the display title of an achievement or health benefit id.
func (t *Translator) MilestoneTitle(id string) string {
	if _, ok := t.Lookup("achievements." + id + ".title"); ok {
		return t.T("achievements." + id + ".title")
	}
	if _, ok := t.Lookup("stats.benefits." + id + ".title"); ok {
		return t.T("stats.benefits." + id + ".title")
	}
	return id
}
