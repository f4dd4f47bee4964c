package exacttime

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ref = time.Date(2018, 1, 1, 12, 0, 0, 0, time.UTC) // a Monday, noon

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestExtract(t *testing.T) {
	// Date phrases without a year resolve into next calendar year counted
	// from the wall clock, not from the reference moment. The expectation
	// is computed the same way so this test flags the quirk if it changes.
	nextYear := time.Now().Year() + 1

	cases := []struct {
		text    string
		matched string
		when    time.Time
	}{
		{"послать презентацию завтра в 10 утра", "завтра в 10 утра", at(2018, 1, 2, 10, 0)},
		{"завтра в 15 в налоговую", "завтра в 15", at(2018, 1, 2, 15, 0)},
		{"в налоговую в 15 завтра утром", "в 15 завтра утром", at(2018, 1, 2, 15, 0)},
		{"в налоговую завтра в 15", "завтра в 15", at(2018, 1, 2, 15, 0)},
		{"завтра в 10 оплатить услуги", "завтра в 10", at(2018, 1, 2, 10, 0)},
		{"в среду в 11:15 в налоговую", "в среду в 11:15", at(2018, 1, 3, 11, 15)},
		{"напомни постирать в 20:15", "в 20:15", at(2018, 1, 1, 20, 15)},
		{"напомни погладить в 10", "в 10", at(2018, 1, 1, 22, 0)},
		{"подготовиться к мероприятию в субботу вечером", "в субботу вечером", at(2018, 1, 6, 19, 0)},
		{"подготовиться к мероприятию в понедельник в 20:00", "в понедельник в 20:00", at(2018, 1, 8, 20, 0)},
		{"подготовиться к мероприятию завтра в 20:00", "завтра в 20:00", at(2018, 1, 2, 20, 0)},
		{"в 8 вечера доделать работу", "в 8 вечера", at(2018, 1, 1, 20, 0)},
		{"23 мая в 15-10 на почту", "23 мая в 15-10", at(nextYear, 5, 23, 15, 10)},
		{"17.04.2018 в 9 поздравить коллегу с днем рождения", "17.04.2018 в 9", at(2018, 4, 17, 9, 0)},
		{"во вторник сходить к врачу", "во вторник", at(2018, 1, 2, 9, 0)},
		{"электричка в 6 вечера", "в 6 вечера", at(2018, 1, 1, 18, 0)},
		{"электричка в 6 утра", "в 6 утра", at(2018, 1, 2, 6, 0)},
		{"электричка в 2 ночи", "в 2 ночи", at(2018, 1, 2, 2, 0)},
		{"электричка в 2 дня", "в 2 дня", at(2018, 1, 1, 14, 0)},
		{"завтра в 10 утра накормить кошку", "завтра в 10 утра", at(2018, 1, 2, 10, 0)},
		{"сходить в магазин вечером", "вечером", at(2018, 1, 1, 19, 0)},
		{"сходить в магазин сегодня вечером", "сегодня вечером", at(2018, 1, 1, 19, 0)},
		{"сходить в магазин завтра днём", "завтра днём", at(2018, 1, 2, 14, 0)},
		{"Покушать в воскресенье", "в воскресенье", at(2018, 1, 7, 9, 0)},
		{"напомни проснуться завтра утром", "завтра утром", at(2018, 1, 2, 9, 0)},
		{"завтра в 10 часов в налоговую", "завтра в 10 часов", at(2018, 1, 2, 10, 0)},
		{"встреча 18.12.2018 в 14:30", "18.12.2018 в 14:30", at(2018, 12, 18, 14, 30)},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			x := Extract(tc.text, ref)
			require.NotNil(t, x)
			assert.Equal(t, tc.matched, x.MatchedText)
			assert.Equal(t, tc.when, x.When)
		})
	}
}

func TestExtractNoMatch(t *testing.T) {
	for _, text := range []string{
		"покажи погоду",
		"",
		"просто текст без времени",
		"в 99 ничего", // 99 is no hour and no minute
	} {
		assert.Nil(t, Extract(text, ref), "input: %q", text)
	}
}

// A number rejected by a range constraint is not a fault: the rule simply
// does not match and later alternatives get their turn.
func TestExtractOutOfRangeFallsThrough(t *testing.T) {
	x := Extract("32 мая в 10 встреча", ref) // 32 is no day of month
	require.NotNil(t, x)
	assert.Equal(t, "в 10", x.MatchedText)
}

func TestExtractTaskText(t *testing.T) {
	x := Extract("напомни погладить в 10", ref)
	require.NotNil(t, x)
	assert.Equal(t, "напомни погладить", x.Task)

	x = Extract("в 8 вечера доделать работу", ref)
	require.NotNil(t, x)
	assert.Equal(t, "доделать работу", x.Task)
}

// The task text plus the matched text reassemble the original string, up to
// the whitespace trimmed at the excision point.
func TestExtractReconstruction(t *testing.T) {
	for _, text := range []string{
		"напомни погладить в 10",
		"в 8 вечера доделать работу",
		"подготовиться к мероприятию в субботу вечером",
	} {
		x := Extract(text, ref)
		require.NotNil(t, x)

		i := strings.Index(text, x.MatchedText)
		require.GreaterOrEqual(t, i, 0)
		rebuilt := text[:i] + text[i+len(x.MatchedText):]
		assert.Equal(t, x.Task, strings.TrimSpace(rebuilt))
	}
}

func TestExtractBareMinute(t *testing.T) {
	// A bare number too big for an hour but valid as a minute assumes the
	// 9 o'clock base hour; 09:45 already passed at noon, so the rollover
	// takes the 12-hour partner.
	x := Extract("созвон в 45", ref)
	require.NotNil(t, x)
	assert.Equal(t, "в 45", x.MatchedText)
	assert.Equal(t, at(2018, 1, 1, 21, 45), x.When)
}

func TestExtractFirstMatchWins(t *testing.T) {
	// Two temporal phrases: only the leftmost is used.
	x := Extract("в 10 позвонить, потом в 15 написать", ref)
	require.NotNil(t, x)
	assert.Equal(t, "в 10", x.MatchedText)
}

func TestExtractZeroReferenceUsesNow(t *testing.T) {
	before := time.Now()
	x := Extract("сходить в магазин завтра в 10", time.Time{})
	require.NotNil(t, x)
	assert.True(t, x.When.After(before))
}
