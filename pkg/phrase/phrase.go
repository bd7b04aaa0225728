package phrase

import (
	"strings"
	"time"

	"github.com/matzehuels/fuzzyface/pkg/errors"
)

// Row is one minute bucket of the phrase table.
type Row struct {
	First, Last int    // inclusive minute range
	Prefix      string // text before the hour word
	Postfix     string // text after the hour word
	HourOffset  int    // 1 when the phrase names the coming hour
}

// rows covers minutes 1..59 without gaps or overlaps. Minute 0 has no row
// and reads as the bare hour word.
var rows = []Row{
	{First: 1, Last: 4, Postfix: "ish"},
	{First: 5, Last: 7, Postfix: " or so"},
	{First: 8, Last: 14, Prefix: "almost a quarter past "},
	{First: 15, Last: 15, Prefix: "quarter past "},
	{First: 16, Last: 23, Prefix: "quarter past ", Postfix: " or so"},
	{First: 24, Last: 29, Prefix: "almost half past "},
	{First: 30, Last: 30, Postfix: " thirty"},
	{First: 31, Last: 34, Postfix: " thirtyish"},
	{First: 35, Last: 44, Prefix: "almost a quarter to ", HourOffset: 1},
	{First: 45, Last: 45, Postfix: " forty five"},
	{First: 46, Last: 59, Prefix: "almost ", HourOffset: 1},
}

// hourWords is indexed by hour-1.
var hourWords = [12]string{
	"ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX",
	"SEVEN", "EIGHT", "NINE", "TEN", "ELEVEN", "TWELVE",
}

// lowerHourWords caches the composed form so Format allocates only the
// final concatenation.
var lowerHourWords = func() [12]string {
	var out [12]string
	for i, w := range hourWords {
		out[i] = strings.ToLower(w)
	}
	return out
}()

// Format returns the phrase for hour in 1..12 and minute in 0..59.
// It returns "" for readings outside that domain.
func Format(hour, minute int) string {
	if !inDomain(hour, minute) {
		return ""
	}
	r, ok := lookup(minute)
	if !ok {
		return lowerHourWords[hour-1]
	}
	return r.Prefix + lowerHourWords[wrap(hour+r.HourOffset)-1] + r.Postfix
}

// FromTime formats the wall-clock reading of t, folding the 24-hour clock
// onto the 12-hour dial (0 and 12 read as twelve).
func FromTime(t time.Time) string {
	return Format(Dial(t.Hour()), t.Minute())
}

// Dial maps a 24-hour value onto 1..12.
func Dial(hour24 int) int {
	h := hour24 % 12
	if h <= 0 {
		h += 12
	}
	return h
}

// HourWord returns the canonical upper-case word for hour in 1..12, or ""
// when hour is out of range.
func HourWord(hour int) string {
	if hour < 1 || hour > 12 {
		return ""
	}
	return hourWords[hour-1]
}

// Rows returns a copy of the minute bucket table.
func Rows() []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Validate reports why a reading is outside the dial, or nil.
func Validate(hour, minute int) error {
	if hour < 1 || hour > 12 {
		return errors.New(errors.ErrCodeInvalidTime, "hour %d out of range 1..12", hour)
	}
	if minute < 0 || minute > 59 {
		return errors.New(errors.ErrCodeInvalidTime, "minute %d out of range 0..59", minute)
	}
	return nil
}

func inDomain(hour, minute int) bool {
	return hour >= 1 && hour <= 12 && minute >= 0 && minute <= 59
}

func lookup(minute int) (Row, bool) {
	for _, r := range rows {
		if minute >= r.First && minute <= r.Last {
			return r, true
		}
	}
	return Row{}, false
}

// wrap folds h back onto 1..12 (13 becomes 1).
func wrap(h int) int {
	return (h-1)%12 + 1
}
