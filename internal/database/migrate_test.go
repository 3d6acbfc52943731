package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sky.db")

	v, dirty, err := Version(path)
	require.NoError(t, err)
	assert.Zero(t, v)
	assert.False(t, dirty)

	require.NoError(t, Migrate(path))
	require.NoError(t, Migrate(path))

	v, dirty, err = Version(path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Readiness{DB: db}.CheckReadiness(context.Background()))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&n))
	assert.Zero(t, n)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sky.db")
	require.NoError(t, Migrate(path))
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO slots(key, value) VALUES ('a', x'00')`); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&n))
	assert.Zero(t, n)
}

func TestReadinessFailsOnClosedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sky.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = Readiness{DB: db}.CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database:")
}
