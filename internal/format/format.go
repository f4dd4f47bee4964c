// Package format renders extraction results as the human-readable Russian
// replies the bot sends back.
package format

import (
	"fmt"
	"time"

	"github.com/asyncee/prophet-bot/internal/exacttime"
)

const apology = "Я ничего не поняла."

const greetingText = `Привет! Я напоминалка! Напиши мне, о чём тебе стоит напомнить простой строкой, например,
"сходить в магазин завтра в 10:30"`

// Go's time formatting has no Russian locale, so the names live here.
// Month names are genitive, as they follow a day number.
var monthNames = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Weekday phrases in the form used after "напомню ...", keyed by
// time.Weekday (Sunday first).
var weekdayNames = [...]string{
	"воскресенье", "понедельник", "вторник", "среда",
	"четверг", "пятница", "суббота",
}

var thisWeekday = [...]string{
	"в это воскресенье", "в этот понедельник", "в этот вторник", "в эту среду",
	"в этот четверг", "в эту пятницу", "в эту субботу",
}

// Apology is the fixed reply for input with no recognizable temporal phrase.
func Apology() string { return apology }

// Greeting is the /start reply.
func Greeting() string { return greetingText }

// Reply renders the confirmation for a successful extraction:
//
//	"погладить" — напомню сегодня в 22 (2018-01-01 22:00)
func Reply(x *exacttime.Extraction, now time.Time) string {
	return fmt.Sprintf("\"%s\" — напомню %s (%s)",
		x.Task, HumanWhen(x.When, now), x.When.Format("2006-01-02 15:04"))
}

// HumanWhen describes moment relative to now: a relative-day word when the
// moment falls on today, tomorrow, the day after or later this week, an
// absolute date otherwise, followed by the clock time.
func HumanWhen(moment, now time.Time) string {
	return humanDate(moment, now) + " " + humanTime(moment)
}

func humanTime(moment time.Time) string {
	if moment.Minute() != 0 {
		return fmt.Sprintf("в %d:%02d", moment.Hour(), moment.Minute())
	}
	return fmt.Sprintf("в %d", moment.Hour())
}

func humanDate(moment, now time.Time) string {
	momentDay := dateOnly(moment)
	today := dateOnly(now)

	switch {
	case momentDay.Equal(today):
		return "сегодня"
	case momentDay.Equal(today.AddDate(0, 0, 1)):
		return "завтра"
	case momentDay.Equal(today.AddDate(0, 0, 2)):
		return fmt.Sprintf("послезавтра (%s)", weekdayNames[moment.Weekday()])
	case onThisWeek(momentDay, today):
		return thisWeekday[moment.Weekday()]
	default:
		return fmt.Sprintf("%d %s %d", moment.Day(), monthNames[moment.Month()-1], moment.Year())
	}
}

// onThisWeek reports whether day falls into today's Monday-based week.
func onThisWeek(day, today time.Time) bool {
	offset := int(today.Weekday())
	if offset == 0 {
		offset = 7
	}
	weekStart := today.AddDate(0, 0, -(offset - 1))
	return !day.Before(weekStart) && day.Before(weekStart.AddDate(0, 0, 7))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
