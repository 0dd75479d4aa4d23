package profile

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_AppliesMigrations(t *testing.T) {
	store := openTestStore(t)

	var name string
	err := store.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='profiles'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "profiles", name)
}

func TestGet_MissingName(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("trading", `{"columnId":"pnl"}`))

	payload, ok, err := store.Get("trading")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"columnId":"pnl"}`, payload)
}

func TestSet_ReplacesExistingPayload(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("trading", `{"columnId":"pnl"}`))
	require.NoError(t, store.Set("trading", `{"columnId":"qty"}`))

	payload, ok, err := store.Get("trading")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"columnId":"qty"}`, payload)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("trading", `{}`))
	require.NoError(t, store.Delete("trading"))

	_, ok, err := store.Get("trading")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete_MissingNameIsAnError(t *testing.T) {
	store := openTestStore(t)

	err := store.Delete("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestList_OrderedByName(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("zulu", `{}`))
	require.NoError(t, store.Set("alpha", `{}`))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "zulu", entries[1].Name)
	assert.NotEmpty(t, entries[0].UpdatedAt)
}

func TestList_Empty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, len(All), version)
}
