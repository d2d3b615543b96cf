package journal

import (
	"reflect"
	"strings"
	"time"
)

// Normalize produces the canonical form used for dirty comparison: deep
// independent copies, collections materialized (nil becomes empty), day
// sequences padded to 7 slots, blank meal rows dropped, and event dates
// reduced to their calendar day at midnight UTC. Applying it twice yields
// the same result.
func Normalize(record Record) Record {
	normalized := record.Clone()

	if normalized.HabitTrackers == nil {
		normalized.HabitTrackers = []string{}
	}
	if normalized.HabitCompletion == nil {
		normalized.HabitCompletion = map[string][]bool{}
	}
	for tracker, row := range normalized.HabitCompletion {
		if len(row) != DaysPerWeek {
			resized := make([]bool, DaysPerWeek)
			copy(resized, row)
			normalized.HabitCompletion[tracker] = resized
		}
	}

	if len(normalized.MoodScores) != DaysPerWeek {
		resized := make([]int, DaysPerWeek)
		copy(resized, normalized.MoodScores)
		normalized.MoodScores = resized
	}

	if normalized.Meals == nil {
		normalized.Meals = map[int]Meal{}
	}
	for slot, meal := range normalized.Meals {
		if isBlankMeal(meal) {
			delete(normalized.Meals, slot)
		}
	}

	if normalized.Events == nil {
		normalized.Events = []Event{}
	}
	for index := range normalized.Events {
		normalized.Events[index].Date = canonicalDay(normalized.Events[index].Date)
	}

	return normalized
}

// Equal is deep structural equality over the normalized form:
// order-sensitive for sequences, key-set and value equality for mappings.
func Equal(a Record, b Record) bool {
	return reflect.DeepEqual(Normalize(a), Normalize(b))
}

// canonicalDay keeps the calendar date as the event's own location sees it.
// Converting to a UTC instant first would shift dates across the day
// boundary for zones away from UTC.
func canonicalDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isBlankMeal(meal Meal) bool {
	return strings.TrimSpace(meal.Breakfast) == "" &&
		strings.TrimSpace(meal.Lunch) == "" &&
		strings.TrimSpace(meal.Dinner) == "" &&
		strings.TrimSpace(meal.Extra) == ""
}
