package exporter

import (
	"fmt"
	"io"
	"time"

	"dersctl/pkg/schedule"

	ics "github.com/arran4/golang-ical"
)

// Options controls the calendar export
type Options struct {
	// From is the date the recurring events start from, defaults to today
	From time.Time
	// Location of the school, defaults to Europe/Istanbul
	Location *time.Location
}

// GenerateICS writes one weekly recurring event per course whose time slot
// can be parsed. It returns how many events were written.
func GenerateICS(courses []schedule.Course, w io.Writer, opts Options) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//dersctl//Haftalik Ders Programi//TR")

	loc := opts.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation("Europe/Istanbul")
		if err != nil {
			return 0, fmt.Errorf("could not load timezone: %w", err)
		}
	}

	from := opts.From
	if from.IsZero() {
		from = time.Now()
	}
	from = from.In(loc)

	written := 0
	for i, c := range courses {
		slot, ok := schedule.ParseSlot(c.TimeSlot)
		if !ok {
			continue // Skip slots we cannot place on a weekday
		}

		day := nextWeekday(from, slot.Weekday)
		startTime := slot.Start(day)
		endTime := slot.End(day)

		event := cal.AddEvent(fmt.Sprintf("%s-%s-%d@dersctl", c.ClassName, startTime.Format("20060102T150405"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY")
		event.SetSummary(c.CourseName)
		event.SetLocation(c.ClassName)

		description := fmt.Sprintf("Hoca: %s\nSaat: %s", c.Instructor, c.TimeSlot)
		event.SetDescription(description)
		written++
	}

	return written, cal.SerializeTo(w)
}

// nextWeekday returns the first date on or after from that falls on day
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	offset := (int(day) - int(from.Weekday()) + 7) % 7
	d := from.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, from.Location())
}
