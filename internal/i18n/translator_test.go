package i18n

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/progress"
)

func TestTranslator_T(t *testing.T) {
	tr, err := New(constants.LanguageEN)
	require.NoError(t, err)

	assert.Equal(t, "Save", tr.T("common.save"))
	assert.Equal(t, "Blood Pressure", tr.T("stats.benefits.20m.title"))
	assert.Equal(t, "missing.path", tr.T("missing.path"))
	// a map node is not a string
	assert.Equal(t, "common", tr.T("common"))

	require.NoError(t, tr.SetLanguage("tr"))
	assert.Equal(t, constants.LanguageTR, tr.Language())
	assert.Equal(t, "Kaydet", tr.T("common.save"))
}

func TestTranslator_SetLanguageRejectsUnknown(t *testing.T) {
	tr, err := New(constants.LanguageTR)
	require.NoError(t, err)

	assert.Error(t, tr.SetLanguage("de"))
	assert.Equal(t, constants.LanguageTR, tr.Language())

	_, err = New("fr")
	assert.Error(t, err)
}

func TestTranslator_Lines(t *testing.T) {
	tr, err := New(constants.LanguageEN)
	require.NoError(t, err)

	quotes := tr.Lines("home.quotes")
	assert.Len(t, quotes, 8)
	assert.Equal(t, []string{tr.T("common.save")}, tr.Lines("common.save"))
	assert.Equal(t, []string{"nope"}, tr.Lines("nope"))
	assert.Equal(t, []string{"settings.theme"}, tr.Lines("settings.theme"), "map nodes are not lines")
}

func TestTranslator_Tf(t *testing.T) {
	tr, err := New(constants.LanguageEN)
	require.NoError(t, err)

	assert.Equal(t, "When do you want to quit smoking, Deniz?", tr.Tf("onboarding.quitTime.question", "Deniz"))
}

func TestTranslator_CatalogCoverage(t *testing.T) {
	for _, lang := range Languages() {
		tr, err := New(lang)
		require.NoError(t, err)

		for _, a := range progress.Achievements() {
			assert.NotEqual(t, a.ID, tr.MilestoneTitle(a.ID), "%s: achievement %s", lang, a.ID)
			_, ok := tr.Lookup("achievements." + a.ID + ".description")
			assert.True(t, ok, "%s: achievement %s description", lang, a.ID)
		}
		for _, b := range progress.Benefits() {
			assert.NotEqual(t, b.ID, tr.MilestoneTitle(b.ID), "%s: benefit %s", lang, b.ID)
		}
		assert.NotEqual(t, []string{"home.quotes"}, tr.Lines("home.quotes"), lang)
	}
}

var literalKey = regexp.MustCompile(`\b(T|Tf|Lines)\("([A-Za-z0-9_.]+)"`)

// sourceKeys collects the literal translation keys used by the tui and cli
// packages. Prefixes completed at runtime (ending in '.') are skipped.
func sourceKeys(t *testing.T) map[string]string {
	t.Helper()
	keys := map[string]string{}
	for _, root := range []string{"../tui", "../cli"} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			for _, m := range literalKey.FindAllStringSubmatch(string(src), -1) {
				if !strings.HasSuffix(m[2], ".") {
					keys[m[2]] = m[1]
				}
			}
			return nil
		})
		require.NoError(t, err)
	}
	return keys
}

func TestTranslator_SourceKeysResolve(t *testing.T) {
	keys := sourceKeys(t)
	for _, k := range []string{"common.yes", "common.no", "settings.theme.light", "settings.theme.dark", "settings.timezone.title", "settings.timezone.invalid"} {
		require.Contains(t, keys, k)
	}

	for _, lang := range Languages() {
		tr, err := New(lang)
		require.NoError(t, err)
		for key, fn := range keys {
			if fn == "Lines" {
				assert.NotEqual(t, []string{key}, tr.Lines(key), "%s: %s", lang, key)
				continue
			}
			assert.NotEqual(t, key, tr.T(key), "%s: %s", lang, key)
		}
	}
}

func TestTranslator_MilestoneTitleUnknown(t *testing.T) {
	tr, err := New(constants.LanguageEN)
	require.NoError(t, err)
	assert.Equal(t, "5y", tr.MilestoneTitle("5y"))
}
