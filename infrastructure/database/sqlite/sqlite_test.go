package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCriaTabelas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fintrak.db")

	conn, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, path, conn.Path())

	for _, table := range []string{"kv", "dirty_keys"} {
		var name string
		err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

func TestRunMigrationsIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrak.db")

	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}
