package week

import (
	"errors"
	"time"
)

type StartDay string

const (
	StartSunday StartDay = "sunday"
	StartMonday StartDay = "monday"
)

const KeyLayout = "2006-01-02"

var ErrInvalidKey = errors.New("invalid week key")

func ParseStartDay(value string) StartDay {
	if value == string(StartMonday) {
		return StartMonday
	}
	return StartSunday
}

func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func Start(date time.Time, startDay StartDay) time.Time {
	day := DateOnly(date)
	offset := int(day.Weekday())
	if startDay == StartMonday {
		if day.Weekday() == time.Sunday {
			offset = 6
		} else {
			offset = int(day.Weekday()) - 1
		}
	}
	return day.AddDate(0, 0, -offset)
}

// CanonicalKey is always Sunday-anchored so that the same calendar week maps
// to the same storage row regardless of the display week-start preference.
func CanonicalKey(date time.Time) string {
	return Start(date, StartSunday).Format(KeyLayout)
}

func DisplayKey(date time.Time, startDay StartDay) string {
	return Start(date, startDay).Format(KeyLayout)
}

func ParseKey(key string) (time.Time, error) {
	parsed, err := time.ParseInLocation(KeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidKey
	}
	return parsed, nil
}

func IsCanonicalKey(key string) bool {
	parsed, err := ParseKey(key)
	if err != nil {
		return false
	}
	return parsed.Weekday() == time.Sunday && parsed.Format(KeyLayout) == key
}

func Dates(weekStart time.Time) []time.Time {
	start := DateOnly(weekStart)
	dates := make([]time.Time, 7)
	for offset := range dates {
		dates[offset] = start.AddDate(0, 0, offset)
	}
	return dates
}

// Contains reports whether date falls on one of the week's seven calendar
// days. Each side is read as a calendar date in its own location, so a local
// midnight east or west of UTC never shifts the date to the neighboring day.
func Contains(weekStart time.Time, date time.Time) bool {
	day := date.Format(KeyLayout)
	start := DateOnly(weekStart)
	return day >= start.Format(KeyLayout) && day <= start.AddDate(0, 0, 6).Format(KeyLayout)
}

// DaySlot is the Sunday-anchored storage slot for a date, independent of the
// display week-start preference.
func DaySlot(date time.Time) int {
	return int(date.Weekday())
}

var (
	dayNamesFull  = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	dayNamesShort = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

func DayNames(startDay StartDay, full bool) []string {
	names := dayNamesShort
	if full {
		names = dayNamesFull
	}
	ordered := make([]string, 0, len(names))
	if startDay == StartMonday {
		ordered = append(ordered, names[1:]...)
		return append(ordered, names[0])
	}
	return append(ordered, names...)
}
