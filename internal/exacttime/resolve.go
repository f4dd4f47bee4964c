package exacttime

import "time"

// defaultHour is the base hour assumed when a phrase names no usable hour.
const defaultHour = 9

// TimeOfDayCategory is one of the four colloquial periods of the day. Each
// covers a half-open hour range and has a canonical default clock time.
type TimeOfDayCategory int

const (
	Morning TimeOfDayCategory = iota // [4, 12), default 09:00
	Day                              // [12, 18), default 14:00
	Evening                          // [18, 24), default 19:00
	Night                            // [0, 4), default 00:00
)

func (c TimeOfDayCategory) bounds() (start, stop int) {
	switch c {
	case Morning:
		return 4, 12
	case Day:
		return 12, 18
	case Evening:
		return 18, 24
	default:
		return 0, 4
	}
}

func (c TimeOfDayCategory) contains(hour int) bool {
	start, stop := c.bounds()
	return start <= hour && hour < stop
}

func (c TimeOfDayCategory) defaultClock() (hour, minute int) {
	switch c {
	case Morning:
		return 9, 0
	case Day:
		return 14, 0
	case Evening:
		return 19, 0
	default:
		return 0, 0
	}
}

// prepareHour disambiguates a colloquial hour against this period:
// "2 утра" → 02:00, "10 вечера" → 22:00, "2 дня" → 14:00, "10 ночи" → 22:00.
// Hours already inside the period's range pass through unchanged.
func (c TimeOfDayCategory) prepareHour(hour int) int {
	if c.contains(hour) {
		return hour
	}
	start, _ := c.bounds()
	switch c {
	case Morning:
		return hour
	case Day:
		return twelveHourPartner(hour)
	case Evening:
		if hour <= start {
			return twelveHourPartner(hour)
		}
		return hour // hour past the period's end stays literal
	default: // Night
		if hour <= start {
			return hour
		}
		return twelveHourPartner(hour)
	}
}

// twelveHourPartner maps an hour to the one 12 hours away on a 24-hour clock
// (1↦13, …, 11↦23, 12↦0). Total over 0..23 so the resolver never faults.
func twelveHourPartner(hour int) int {
	return (hour + 12) % 24
}

// Resolve turns the fact plus a reference moment into a concrete date-time.
// It is pure: identical arguments always give identical results.
//
// Base time comes from the time-of-day default (or 09:00), overridden by an
// explicit time. Base date comes from the reference, overridden by the day
// slot. An explicit hour is then disambiguated against the time-of-day
// period, and finally the naive result is rolled forward if it has already
// passed.
func (f *AtTime) Resolve(ref time.Time) time.Time {
	hour, minute := defaultHour, 0
	if f.TimeOfDay != nil {
		hour, minute = f.TimeOfDay.Category.defaultClock()
	}
	if f.Time != nil {
		hour, minute = f.Time.clock()
	}

	date := ref
	if f.Day != nil {
		date = f.Day.date(ref)
	}

	if f.TimeOfDay != nil {
		hour = f.TimeOfDay.Category.prepareHour(hour)
	}

	naive := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, ref.Location())
	return f.postprocess(ref, naive)
}

// postprocess rolls a naive result forward when it is at or before the
// reference moment and within a day of it: first by trying the 12-hour
// partner of its hour ("at 10" said at noon means 22:00), and failing that
// by a whole day ("at 10" said at 8 pm means 10:00 tomorrow).
func (f *AtTime) postprocess(ref, naive time.Time) time.Time {
	if ref.Before(naive) || ref.Sub(naive) >= 24*time.Hour {
		return naive
	}

	shifted := time.Date(
		naive.Year(), naive.Month(), naive.Day(),
		twelveHourPartner(naive.Hour()), naive.Minute(), 0, 0, naive.Location(),
	)

	if f.TimeOfDay == nil {
		if shifted.After(ref) {
			return shifted
		}
	} else if f.TimeOfDay.Category.contains(shifted.Hour()) {
		return shifted
	}

	return naive.AddDate(0, 0, 1)
}
