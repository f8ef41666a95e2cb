package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schema "github.com/campusconnect/placement-api/migrations"
)

func TestLoad_OrdersByNumericVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"10_indexes.sql":   {Data: []byte("CREATE INDEX a ON t (c);")},
		"002_jobs.sql":     {Data: []byte("CREATE TABLE jobs ();")},
		"001_init.sql":     {Data: []byte("CREATE TABLE accounts ();")},
		"README.md":        {Data: []byte("notes")},
		"nested/003_x.sql": {Data: []byte("SELECT 1;")},
	}

	migrations, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	assert.Equal(t, "001", migrations[0].Version)
	assert.Equal(t, "002", migrations[1].Version)
	assert.Equal(t, "10", migrations[2].Version)
	assert.Equal(t, "CREATE TABLE accounts ();", migrations[0].SQL)
}

func TestLoad_RejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"no underscore", fstest.MapFS{"init.sql": {Data: []byte("SELECT 1;")}}},
		{"non numeric version", fstest.MapFS{"v1_init.sql": {Data: []byte("SELECT 1;")}}},
		{"duplicate version", fstest.MapFS{
			"001_init.sql":  {Data: []byte("SELECT 1;")},
			"001_other.sql": {Data: []byte("SELECT 2;")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys)
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmbeddedSchema(t *testing.T) {
	migrations, err := Load(schema.Files)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, "001", migrations[0].Version)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS accounts")
}
