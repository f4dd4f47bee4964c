// Package ics renders an extraction as a single-event iCalendar file, so a
// recognized reminder can be imported into any calendar application.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/asyncee/prophet-bot/internal/exacttime"
)

// Write emits a VCALENDAR with one VEVENT: DTSTART at the resolved moment
// and the task text as the summary.
func Write(w io.Writer, x *exacttime.Extraction, now time.Time) error {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%d@prophet-bot", x.When.UnixNano()))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now)
	event.Props.SetDateTime(ical.PropDateTimeStart, x.When)
	event.Props.SetText(ical.PropSummary, x.Task)

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//asyncee//prophet-bot//RU")
	cal.Children = append(cal.Children, event.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}
