package journal

import (
	"errors"
	"time"

	"github.com/marisolvale/weekling/internal/week"
)

var (
	ErrTooManyEvents      = errors.New("too many events")
	ErrEventOutsideWeek   = errors.New("event date outside week")
	ErrDuplicateEventID   = errors.New("duplicate event id")
	ErrMoodOutOfRange     = errors.New("mood score out of range")
	ErrDuplicateHabit     = errors.New("duplicate habit tracker")
	ErrOrphanCompletion   = errors.New("completion row without tracker")
	ErrInvalidDaySequence = errors.New("day sequence must have 7 slots")
	ErrInvalidMealSlot    = errors.New("meal day slot out of range")
)

// Validate checks the record invariants at the persistence boundary.
func Validate(weekStart time.Time, record Record) error {
	seenTrackers := make(map[string]bool, len(record.HabitTrackers))
	for _, tracker := range record.HabitTrackers {
		if seenTrackers[tracker] {
			return ErrDuplicateHabit
		}
		seenTrackers[tracker] = true
	}
	for tracker, row := range record.HabitCompletion {
		if !seenTrackers[tracker] {
			return ErrOrphanCompletion
		}
		if len(row) != DaysPerWeek {
			return ErrInvalidDaySequence
		}
	}

	if len(record.MoodScores) != 0 && len(record.MoodScores) != DaysPerWeek {
		return ErrInvalidDaySequence
	}
	for _, score := range record.MoodScores {
		if score < MoodNotSet || score > MoodMax {
			return ErrMoodOutOfRange
		}
	}

	for slot := range record.Meals {
		if slot < 0 || slot >= DaysPerWeek {
			return ErrInvalidMealSlot
		}
	}

	if len(record.Events) > MaxEvents {
		return ErrTooManyEvents
	}
	seenEventIDs := make(map[string]bool, len(record.Events))
	for _, event := range record.Events {
		if event.ID != "" && seenEventIDs[event.ID] {
			return ErrDuplicateEventID
		}
		seenEventIDs[event.ID] = true
		if !week.Contains(weekStart, event.Date) {
			return ErrEventOutsideWeek
		}
	}

	return nil
}
