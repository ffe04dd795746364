package study

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ClockTime is a naive local wall-clock time. Minute is carried as parsed:
// the two-digit match is not range checked, so 60-99 pass through uncorrected.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

var (
	ErrUnparseableTime = errors.New("no parseable time in string")

	clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	meridiemMark = regexp.MustCompile(`(?i)(AM|PM)`)
)

// ParseClockTime finds the first H:MM or HH:MM substring anywhere in s and
// returns it as a 24-hour clock time. An AM/PM marker anywhere in the string
// (first one wins, need not be adjacent to the digits) switches the hour to
// 12-hour interpretation; without a marker the hour is taken as already being
// in 24-hour form. Hours outside 0-23 after adjustment are rejected.
func ParseClockTime(s string) (ClockTime, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, ErrUnparseableTime
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if mark := meridiemMark.FindString(s); mark != "" {
		switch strings.ToUpper(mark) {
		case "PM":
			if hour != 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}
	}

	if hour < 0 || hour > 23 {
		return ClockTime{}, ErrUnparseableTime
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// MinuteOfDay positions the time inside a day for minute-granularity range
// checks. Out-of-range minutes (the 60-99 quirk) count as parsed.
func (t ClockTime) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}
