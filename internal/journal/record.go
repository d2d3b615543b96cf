package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marisolvale/weekling/internal/week"
)

const (
	DaysPerWeek = 7
	MaxEvents   = 3
	MoodNotSet  = 0
	MoodMax     = 6
)

type Meal struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Extra     string `json:"extra"`
}

type Event struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// Record is one user's diary for one calendar week. Day slots are always
// Sunday-anchored (slot 0 = Sunday) regardless of the display week-start
// preference.
type Record struct {
	HabitTrackers   []string          `json:"habitTrackers"`
	HabitCompletion map[string][]bool `json:"habitCompletion"`
	MoodScores      []int             `json:"moodScores"`
	Meals           map[int]Meal      `json:"meals"`
	Events          []Event           `json:"events"`
	Grateful        string            `json:"grateful"`
	Comment         string            `json:"comment"`
}

func Empty() Record {
	return Record{
		HabitTrackers:   []string{},
		HabitCompletion: map[string][]bool{},
		MoodScores:      make([]int, DaysPerWeek),
		Meals:           map[int]Meal{},
		Events:          []Event{},
	}
}

func (record Record) Clone() Record {
	cloned := record

	cloned.HabitTrackers = make([]string, len(record.HabitTrackers))
	copy(cloned.HabitTrackers, record.HabitTrackers)

	cloned.HabitCompletion = make(map[string][]bool, len(record.HabitCompletion))
	for tracker, days := range record.HabitCompletion {
		row := make([]bool, len(days))
		copy(row, days)
		cloned.HabitCompletion[tracker] = row
	}

	cloned.MoodScores = make([]int, len(record.MoodScores))
	copy(cloned.MoodScores, record.MoodScores)

	cloned.Meals = make(map[int]Meal, len(record.Meals))
	for slot, meal := range record.Meals {
		cloned.Meals[slot] = meal
	}

	cloned.Events = make([]Event, len(record.Events))
	copy(cloned.Events, record.Events)

	return cloned
}

func (record Record) IsEmpty() bool {
	return Equal(record, Empty())
}

func (record Record) HasHabit(name string) bool {
	for _, tracker := range record.HabitTrackers {
		if tracker == name {
			return true
		}
	}
	return false
}

func (record *Record) AddHabit(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || record.HasHabit(trimmed) {
		return false
	}
	record.HabitTrackers = append(record.HabitTrackers, trimmed)
	if record.HabitCompletion == nil {
		record.HabitCompletion = map[string][]bool{}
	}
	record.HabitCompletion[trimmed] = make([]bool, DaysPerWeek)
	return true
}

func (record *Record) RenameHabit(oldName string, newName string) bool {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" || oldName == trimmed || !record.HasHabit(oldName) || record.HasHabit(trimmed) {
		return false
	}
	for index, tracker := range record.HabitTrackers {
		if tracker == oldName {
			record.HabitTrackers[index] = trimmed
			break
		}
	}
	row := record.HabitCompletion[oldName]
	if row == nil {
		row = make([]bool, DaysPerWeek)
	}
	delete(record.HabitCompletion, oldName)
	record.HabitCompletion[trimmed] = row
	return true
}

func (record *Record) DeleteHabit(name string) bool {
	if !record.HasHabit(name) {
		return false
	}
	trackers := make([]string, 0, len(record.HabitTrackers))
	for _, tracker := range record.HabitTrackers {
		if tracker != name {
			trackers = append(trackers, tracker)
		}
	}
	record.HabitTrackers = trackers
	delete(record.HabitCompletion, name)
	return true
}

func (record *Record) ReorderHabits(ordered []string) bool {
	if len(ordered) != len(record.HabitTrackers) {
		return false
	}
	seen := make(map[string]bool, len(ordered))
	for _, tracker := range ordered {
		if !record.HasHabit(tracker) || seen[tracker] {
			return false
		}
		seen[tracker] = true
	}
	record.HabitTrackers = append([]string{}, ordered...)
	return true
}

func (record *Record) ToggleHabitDay(name string, daySlot int) bool {
	if daySlot < 0 || daySlot >= DaysPerWeek || !record.HasHabit(name) {
		return false
	}
	row := record.HabitCompletion[name]
	if len(row) != DaysPerWeek {
		resized := make([]bool, DaysPerWeek)
		copy(resized, row)
		row = resized
	}
	row[daySlot] = !row[daySlot]
	if record.HabitCompletion == nil {
		record.HabitCompletion = map[string][]bool{}
	}
	record.HabitCompletion[name] = row
	return true
}

// SetMood toggles: setting the score a day already has clears it back to 0.
func (record *Record) SetMood(daySlot int, score int) bool {
	if daySlot < 0 || daySlot >= DaysPerWeek || score < MoodNotSet || score > MoodMax {
		return false
	}
	if len(record.MoodScores) != DaysPerWeek {
		resized := make([]int, DaysPerWeek)
		copy(resized, record.MoodScores)
		record.MoodScores = resized
	}
	if record.MoodScores[daySlot] == score {
		record.MoodScores[daySlot] = MoodNotSet
		return true
	}
	record.MoodScores[daySlot] = score
	return true
}

func (record *Record) SetMeal(daySlot int, meal Meal) bool {
	if daySlot < 0 || daySlot >= DaysPerWeek {
		return false
	}
	if record.Meals == nil {
		record.Meals = map[int]Meal{}
	}
	record.Meals[daySlot] = meal
	return true
}

func (record *Record) AddEvent(weekStart time.Time, date time.Time, text string) (Event, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || len(record.Events) >= MaxEvents || !week.Contains(weekStart, date) {
		return Event{}, false
	}
	event := Event{
		ID:   uuid.NewString(),
		Date: week.DateOnly(date),
		Text: trimmed,
	}
	record.Events = append(record.Events, event)
	return event, true
}

func (record *Record) RemoveEvent(id string) bool {
	filtered := make([]Event, 0, len(record.Events))
	removed := false
	for _, event := range record.Events {
		if event.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, event)
	}
	if removed {
		record.Events = filtered
	}
	return removed
}

func (record *Record) UpdateEventText(id string, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for index := range record.Events {
		if record.Events[index].ID == id {
			record.Events[index].Text = trimmed
			return true
		}
	}
	return false
}

func (record *Record) SetGrateful(text string) {
	record.Grateful = text
}

func (record *Record) SetComment(text string) {
	record.Comment = text
}
