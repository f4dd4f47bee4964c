package exacttime

import "time"

// The fact model is the intermediate representation built while a phrase
// matches: a root AtTime holding an optional explicit time, an optional
// time-of-day mention and an optional day (calendar date or day reference).

// TimePart is the payload of a Time fact: a bare hour, a bare minute, or
// both. clock returns the hour and minute it stands for.
type TimePart interface {
	clock() (hour, minute int)
}

type Hour struct {
	Hour int // 1..24
}

func (h Hour) clock() (int, int) { return h.Hour, 0 }

type Minute struct {
	Minute int // 0..59
}

// A bare minute mention assumes a 9 o'clock base hour.
func (m Minute) clock() (int, int) { return defaultHour, m.Minute }

type HourAndMinute struct {
	Hour   int
	Minute int
}

func (hm HourAndMinute) clock() (int, int) { return hm.Hour, hm.Minute }

type Time struct {
	Inner TimePart
}

func (t Time) clock() (int, int) { return t.Inner.clock() }

// TimeOfDayMention records that the phrase named a period of the day.
type TimeOfDayMention struct {
	Category TimeOfDayCategory
}

// DayValue is the day slot of an AtTime: either a calendar Date or a DayRef.
type DayValue interface {
	date(ref time.Time) time.Time
}

// Date is an explicit calendar date. When the phrase names no year, Year is
// filled with next calendar year (wall clock at construction time + 1) — this
// mirrors the behavior reminders have always had, not a function of the
// reference moment.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) date(ref time.Time) time.Time {
	year, month, day := d.Year, d.Month, d.Day
	if year == 0 {
		year = ref.Year()
	}
	if month == 0 {
		month = int(ref.Month())
	}
	if day == 0 {
		day = ref.Day()
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, ref.Location())
}

// DayRef is a named day: a weekday or a relative word.
type DayRef int

const (
	Monday DayRef = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Tomorrow
	DayAfterTomorrow
	Today
)

func (d DayRef) date(ref time.Time) time.Time {
	switch {
	case d <= Sunday:
		// The next date strictly after ref with this weekday; a weekday
		// reminder never resolves to the reference date itself.
		cur := int(ref.Weekday())
		if cur == 0 {
			cur = 7
		}
		delta := (int(d) - cur + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return ref.AddDate(0, 0, delta)
	case d == Tomorrow:
		return ref.AddDate(0, 0, 1)
	case d == DayAfterTomorrow:
		return ref.AddDate(0, 0, 2)
	default: // Today
		return ref
	}
}

// AtTime is the root fact for one matched phrase. Any of the three slots may
// be empty, but a successful match fills at least one.
type AtTime struct {
	Time      *Time
	TimeOfDay *TimeOfDayMention
	Day       DayValue
}
