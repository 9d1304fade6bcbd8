package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Slot is the structured form of a time slot label such as "Pazartesi 09:00-09:40"
type Slot struct {
	Weekday     time.Weekday
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// Start returns the slot start on the given date
func (s Slot) Start(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.StartHour, s.StartMinute, 0, 0, day.Location())
}

// End returns the slot end on the given date
func (s Slot) End(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.EndHour, s.EndMinute, 0, 0, day.Location())
}

var timeRange = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s*[-–]\s*(\d{1,2})[:.](\d{2})`)

// Longer names first so "cumartesi" is not read as "cuma". The dotless
// spellings come from labels typed in uppercase ASCII ("PAZARTESI").
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"cumartesi", time.Saturday},
	{"cumartesı", time.Saturday},
	{"pazartesi", time.Monday},
	{"pazartesı", time.Monday},
	{"çarşamba", time.Wednesday},
	{"carsamba", time.Wednesday},
	{"perşembe", time.Thursday},
	{"persembe", time.Thursday},
	{"pazar", time.Sunday},
	{"salı", time.Tuesday},
	{"sali", time.Tuesday},
	{"cuma", time.Friday},
}

// ParseSlot extracts a weekday and a start/end time from a free-form slot label.
// It reports false if either part is missing or out of range.
func ParseSlot(label string) (Slot, bool) {
	lower := cases.Lower(language.Turkish).String(label)

	day, ok := findWeekday(lower)
	if !ok {
		return Slot{}, false
	}

	m := timeRange.FindStringSubmatch(lower)
	if m == nil {
		return Slot{}, false
	}

	nums := make([]int, 4)
	for i := range nums {
		nums[i], _ = strconv.Atoi(m[i+1])
	}
	if nums[0] > 23 || nums[2] > 23 || nums[1] > 59 || nums[3] > 59 {
		return Slot{}, false
	}

	slot := Slot{
		Weekday:     day,
		StartHour:   nums[0],
		StartMinute: nums[1],
		EndHour:     nums[2],
		EndMinute:   nums[3],
	}
	if slot.EndHour*60+slot.EndMinute <= slot.StartHour*60+slot.StartMinute {
		return Slot{}, false
	}
	return slot, true
}

func findWeekday(lower string) (time.Weekday, bool) {
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '\t'
	}) {
		for _, w := range weekdayNames {
			if word == w.name {
				return w.day, true
			}
		}
	}
	// Labels like "Pazartesi09:00" have no separator
	for _, w := range weekdayNames {
		if strings.HasPrefix(lower, w.name) {
			return w.day, true
		}
	}
	return 0, false
}
