package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/smokeless/internal/cli"
	"github.com/julianstephens/smokeless/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "smokeless.db")
	store := sqlite.NewStore(dbPath)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	return &cli.Context{Store: store, Out: out}, out, dbPath
}

func TestBackupListCmd_Empty(t *testing.T) {
	ctx, out, _ := setupTestDB(t)
	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "No backups found.")
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out, _ := setupTestDB(t)

	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "✓ Backup created: smokeless-")

	out.Reset()
	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Available backups (1 total")
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, out, dbPath := setupTestDB(t)
	quit := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, ctx.Store.SaveQuitDate(quit))
	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))

	name := strings.TrimSpace(strings.TrimPrefix(out.String(), "✓ Backup created: "))
	require.NoError(t, ctx.Store.ResetAll())

	ctx.In = strings.NewReader("y\n")
	require.NoError(t, (&BackupRestoreCmd{BackupFile: name}).Run(ctx))
	assert.Contains(t, out.String(), "Database restored successfully")

	restored := sqlite.NewStore(dbPath)
	require.NoError(t, restored.Load())
	defer restored.Close()
	got, err := restored.GetQuitDate()
	require.NoError(t, err)
	assert.True(t, quit.Equal(got))
}

func TestBackupRestoreCmd_Cancelled(t *testing.T) {
	ctx, out, _ := setupTestDB(t)
	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	name := strings.TrimSpace(strings.TrimPrefix(out.String(), "✓ Backup created: "))

	ctx.In = strings.NewReader("\n")
	require.NoError(t, (&BackupRestoreCmd{BackupFile: name}).Run(ctx))
	assert.Contains(t, out.String(), "Restore cancelled.")
}

func TestBackupRestoreCmd_NotFound(t *testing.T) {
	ctx, _, _ := setupTestDB(t)
	err := (&BackupRestoreCmd{BackupFile: "smokeless-19990101-0000.db", Yes: true}).Run(ctx)
	assert.ErrorContains(t, err, "backup file not found")
}

func TestBackups_RejectPostgres(t *testing.T) {
	_, err := manager(&cli.Context{Store: sqlite.NewStore("postgres://localhost/smokeless")})
	assert.ErrorContains(t, err, "only supported for SQLite")
}
