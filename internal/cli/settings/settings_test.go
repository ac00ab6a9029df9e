package settings

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "smokeless.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Out: out}, out
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, out := setupTestDB(t)

	require.NoError(t, (&SettingsCmd{List: true}).Run(ctx))
	assert.Contains(t, out.String(), "Language:              TR")
	assert.Contains(t, out.String(), "Theme:                 light")
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, out := setupTestDB(t)
	off := false

	require.NoError(t, (&SettingsCmd{Language: "en", Theme: "dark", Notifications: &off, Timezone: "Europe/Istanbul"}).Run(ctx))
	assert.Contains(t, out.String(), "Settings updated successfully.")

	s, err := ctx.Store.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, constants.LanguageEN, s.Language)
	assert.Equal(t, constants.ThemeDark, s.Theme)
	assert.False(t, s.NotificationsEnabled)
	assert.Equal(t, "Europe/Istanbul", s.Timezone)
}

func TestSettingsCmd_NotificationsFollowNotifier(t *testing.T) {
	ctx, _ := setupTestDB(t)
	require.True(t, ctx.Notifier().Enabled())

	off := false
	require.NoError(t, (&SettingsCmd{Notifications: &off}).Run(ctx))
	assert.False(t, ctx.Notifier().Enabled())
}

func TestSettingsCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"language", SettingsCmd{Language: "DE"}},
		{"theme", SettingsCmd{Theme: "neon"}},
		{"timezone", SettingsCmd{Timezone: "Mars/Olympus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			assert.Error(t, tt.cmd.Run(ctx))

			s, err := ctx.Store.GetSettings()
			require.NoError(t, err)
			assert.Equal(t, constants.DefaultLanguage, s.Language)
			assert.Equal(t, constants.DefaultTheme, s.Theme)
		})
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, out := setupTestDB(t)
	require.NoError(t, (&SettingsCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No changes specified")
}
