package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPhrasesRoundTrip(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.AddPhrase("покажи погоду"))
	require.NoError(t, db.AddPhrase("как дела"))
	require.NoError(t, db.AddPhrase("покажи погоду")) // duplicate, ignored

	phrases, err := db.ListPhrases()
	require.NoError(t, err)
	assert.Equal(t, []string{"покажи погоду", "как дела"}, phrases)

	require.NoError(t, db.ClearPhrases())
	phrases, err = db.ListPhrases()
	require.NoError(t, err)
	assert.Empty(t, phrases)
}

func TestState(t *testing.T) {
	db := testDB(t)

	value, err := db.GetState("update_offset")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, db.SetState("update_offset", "42"))
	require.NoError(t, db.SetState("update_offset", "43"))

	value, err = db.GetState("update_offset")
	require.NoError(t, err)
	assert.Equal(t, "43", value)
}
