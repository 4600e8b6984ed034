package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory_CreatesTokensTable(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='tokens'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tokens", name)
}

func TestOpen_File_CreatesParentDirAndIsReopenable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "session.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO tokens(key, value) VALUES ('access_token', 'T1')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key='access_token'`).Scan(&v))
	assert.Equal(t, "T1", v)
}
