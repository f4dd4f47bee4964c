package bot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/asyncee/prophet-bot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2018, 1, 1, 12, 0, 0, 0, time.UTC)
}

func TestResponderRecognized(t *testing.T) {
	r := &Responder{Now: fixedNow}

	reply, x := r.Reply("напомни погладить в 10")
	require.NotNil(t, x)
	assert.Equal(t, "\"напомни погладить\" — напомню сегодня в 22 (2018-01-01 22:00)", reply)
}

func TestResponderApologizesAndRecords(t *testing.T) {
	db, err := store.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	r := &Responder{DB: db, Now: fixedNow}

	reply, x := r.Reply("покажи погоду")
	assert.Nil(t, x)
	assert.Equal(t, "Я ничего не поняла.", reply)

	phrases, err := db.ListPhrases()
	require.NoError(t, err)
	assert.Equal(t, []string{"покажи погоду"}, phrases)
}

func TestResponderWithoutStore(t *testing.T) {
	r := &Responder{Now: fixedNow}
	reply, x := r.Reply("просто текст")
	assert.Nil(t, x)
	assert.Equal(t, "Я ничего не поняла.", reply)
}
