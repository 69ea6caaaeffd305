package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fettersdev/fetters/internal/sqlite"
	"github.com/fettersdev/fetters/pkg/types"
)

func setupTestStore(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "fetters.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadCreatesConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fetters.toml"), cfg.Path())
	assert.FileExists(t, cfg.Path())
	assert.Empty(t, cfg.CurrentSprintName())
}

func TestSetCurrentSprintNamePersists(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.SetCurrentSprintName("q3-2026"))

	// A fresh load reads the value back from disk.
	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "q3-2026", reloaded.CurrentSprintName())
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fetters.toml")
	require.NoError(t, os.WriteFile(path, []byte("current_sprint_name = [broken"), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, types.ErrConfigDeserialize)
}

func TestResolveCurrentSprintUnset(t *testing.T) {
	db := setupTestStore(t)
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	_, err = cfg.ResolveCurrentSprint(db.Sprints())
	assert.ErrorIs(t, err, types.ErrNoSprintSet)
}

func TestResolveCurrentSprintCreatesLazily(t *testing.T) {
	db := setupTestStore(t)
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cfg.SetCurrentSprintName("lazy"))

	sprint, err := cfg.ResolveCurrentSprint(db.Sprints())
	require.NoError(t, err)
	assert.Equal(t, "lazy", sprint.Name)
	assert.NotEmpty(t, sprint.StartDate)

	// Resolving again reuses the row.
	again, err := cfg.ResolveCurrentSprint(db.Sprints())
	require.NoError(t, err)
	assert.Equal(t, sprint.ID, again.ID)
}
