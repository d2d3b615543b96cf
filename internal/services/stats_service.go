package services

import (
	"context"

	"github.com/marisolvale/weekling/internal/journal"
)

// statsWeekWindow is how many recent weeks feed the trend overview.
const statsWeekWindow = 8

type WeekStats struct {
	WeekStart       string  `json:"weekStart"`
	MoodAverage     float64 `json:"moodAverage"`
	HabitCompletion float64 `json:"habitCompletion"`
}

type StatsOverview struct {
	Weeks                  []WeekStats `json:"weeks"`
	CurrentMoodAverage     float64     `json:"currentMoodAverage"`
	CurrentMoodSet         bool        `json:"currentMoodSet"`
	CurrentHabitCompletion float64     `json:"currentHabitCompletion"`
	LongestStreak          int         `json:"longestStreak"`
}

type WeekSummary struct {
	MoodAverage     float64 `json:"moodAverage"`
	MoodSet         bool    `json:"moodSet"`
	HabitCompletion float64 `json:"habitCompletion"`
	HabitCount      int     `json:"habitCount"`
	EventCount      int     `json:"eventCount"`
	MealsLogged     int     `json:"mealsLogged"`
	HasGrateful     bool    `json:"hasGrateful"`
	HasComment      bool    `json:"hasComment"`
}

type StatsBackend interface {
	ListWeekKeys(ctx context.Context, userID uint) ([]string, error)
	FetchMany(ctx context.Context, userID uint, weekKeys []string) (map[string]journal.Record, error)
}

type StatsService struct {
	backend StatsBackend
}

func NewStatsService(backend StatsBackend) *StatsService {
	return &StatsService{backend: backend}
}

func (service *StatsService) Overview(ctx context.Context, userID uint, currentWeekKey string) (StatsOverview, error) {
	keys, err := service.backend.ListWeekKeys(ctx, userID)
	if err != nil {
		return StatsOverview{}, err
	}
	if len(keys) > statsWeekWindow {
		keys = keys[:statsWeekWindow]
	}

	overview := StatsOverview{Weeks: make([]WeekStats, 0, len(keys))}
	if len(keys) == 0 {
		return overview, nil
	}

	records, err := service.backend.FetchMany(ctx, userID, keys)
	if err != nil {
		return StatsOverview{}, err
	}

	for _, key := range keys {
		record, ok := records[key]
		if !ok {
			continue
		}
		average, _ := MoodAverage(record)
		overview.Weeks = append(overview.Weeks, WeekStats{
			WeekStart:       key,
			MoodAverage:     average,
			HabitCompletion: HabitCompletionPercent(record),
		})
	}

	if current, ok := records[currentWeekKey]; ok {
		overview.CurrentMoodAverage, overview.CurrentMoodSet = MoodAverage(current)
		overview.CurrentHabitCompletion = HabitCompletionPercent(current)
		overview.LongestStreak = LongestStreak(current)
	}

	return overview, nil
}

func MoodAverage(record journal.Record) (float64, bool) {
	sum := 0
	count := 0
	for _, score := range record.MoodScores {
		if score > journal.MoodNotSet {
			sum += score
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

func HabitCompletionPercent(record journal.Record) float64 {
	if len(record.HabitTrackers) == 0 {
		return 0
	}

	completions := 0
	for _, tracker := range record.HabitTrackers {
		for _, done := range record.HabitCompletion[tracker] {
			if done {
				completions++
			}
		}
	}
	possible := len(record.HabitTrackers) * journal.DaysPerWeek
	return float64(completions) / float64(possible) * 100
}

// LongestStreak is the longest run of consecutive completed days across all
// habits in the week.
func LongestStreak(record journal.Record) int {
	longest := 0
	for _, tracker := range record.HabitTrackers {
		current := 0
		for _, done := range record.HabitCompletion[tracker] {
			if done {
				current++
				if current > longest {
					longest = current
				}
				continue
			}
			current = 0
		}
	}
	return longest
}

func SummarizeWeek(record journal.Record) WeekSummary {
	summary := WeekSummary{
		HabitCompletion: HabitCompletionPercent(record),
		HabitCount:      len(record.HabitTrackers),
		EventCount:      len(record.Events),
		MealsLogged:     len(record.Meals),
		HasGrateful:     record.Grateful != "",
		HasComment:      record.Comment != "",
	}
	summary.MoodAverage, summary.MoodSet = MoodAverage(record)
	return summary
}
