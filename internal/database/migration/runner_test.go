package migration

import (
	"testing"
	"testing/fstest"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_OrdersAndChecksums(t *testing.T) {
	src := fstest.MapFS{
		"V2__add_index.sql": {Data: []byte("CREATE INDEX x ON t (a);\n")},
		"V1__init.sql":      {Data: []byte("  CREATE TABLE t (a INT);  ")},
		"README.md":         {Data: []byte("ignored")},
		"V3__notes.txt":     {Data: []byte("ignored")},
		"nested/V9__x.sql":  {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(src)
	require.NoError(t, err)
	require.Len(t, migs, 2)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (a INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoadMigrations_Errors(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1")},
		"V01__b.sql": {Data: []byte("SELECT 2")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")

	_, err = loadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("  \n")}})
	assert.ErrorContains(t, err, "empty migration file")
}

func TestLoadMigrations_BundledSchema(t *testing.T) {
	migs, err := loadMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Contains(t, migs[0].SQL, "job_applications")
}

func TestRun_NilDB(t *testing.T) {
	assert.ErrorContains(t, Runner{FS: migrations.FS}.Run(t.Context(), nil), "no database handle")
}

func TestPending(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "init", Checksum: "a"},
		{Version: 2, Name: "skills", Checksum: "b"},
		{Version: 3, Name: "tracker", Checksum: "c"},
	}

	steps := pending(migs, map[int64]appliedMigration{1: {Version: 1, Checksum: "a"}})
	require.Len(t, steps, 2)
	assert.Equal(t, int64(2), steps[0].Version)
	assert.Equal(t, int64(3), steps[1].Version)
	assert.NoError(t, steps[0].err)

	steps = pending(migs, map[int64]appliedMigration{
		1: {Version: 1, Checksum: "a"},
		2: {Version: 2, Checksum: "edited"},
	})
	require.Len(t, steps, 1)
	assert.ErrorContains(t, steps[0].err, "checksum mismatch: version=2")

	assert.Empty(t, pending(migs[:1], map[int64]appliedMigration{1: {Version: 1, Checksum: "a"}}))
}
