package format

import (
	"testing"
	"time"

	"github.com/asyncee/prophet-bot/internal/exacttime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2018, 1, 1, 12, 0, 0, 0, time.UTC) // Monday

func moment(day, hour, minute int) time.Time {
	return time.Date(2018, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestHumanWhen(t *testing.T) {
	cases := []struct {
		moment time.Time
		want   string
	}{
		{moment(1, 22, 0), "сегодня в 22"},
		{moment(2, 10, 0), "завтра в 10"},
		{moment(2, 15, 30), "завтра в 15:30"},
		{moment(3, 11, 15), "послезавтра (среда) в 11:15"},
		{moment(6, 19, 0), "в эту субботу в 19"},
		{moment(7, 9, 0), "в это воскресенье в 9"},
		{time.Date(2018, 5, 23, 15, 10, 0, 0, time.UTC), "23 мая 2018 в 15:10"},
		{time.Date(2019, 1, 9, 9, 0, 0, 0, time.UTC), "9 января 2019 в 9"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HumanWhen(tc.moment, now))
	}
}

func TestHumanWhenNextWeekIsAbsolute(t *testing.T) {
	// 2018-01-08 is next Monday: outside the reference week, so it gets an
	// absolute date even though it is only a week away.
	got := HumanWhen(moment(8, 20, 0), now)
	assert.Equal(t, "8 января 2018 в 20", got)
}

func TestReply(t *testing.T) {
	x := exacttime.Extract("напомни погладить в 10", now)
	require.NotNil(t, x)
	assert.Equal(t,
		"\"напомни погладить\" — напомню сегодня в 22 (2018-01-01 22:00)",
		Reply(x, now))
}

func TestApology(t *testing.T) {
	assert.Equal(t, "Я ничего не поняла.", Apology())
}
