package services

import (
	"context"
	"errors"

	"github.com/marisolvale/weekling/internal/journal"
	"github.com/marisolvale/weekling/internal/models"
	"github.com/marisolvale/weekling/internal/week"
)

var (
	ErrEntryLoadFailed = errors.New("load weekly entry failed")
	ErrEntrySaveFailed = errors.New("save weekly entry failed")
	ErrInvalidWeekKey  = errors.New("invalid week key")
)

type WeeklyEntryRepository interface {
	FindByUserAndWeek(userID uint, weekStart string) (models.WeeklyEntry, bool, error)
	Upsert(entry *models.WeeklyEntry) error
	ListWeekKeys(userID uint) ([]string, error)
	FindByUserAndWeeks(userID uint, weekStarts []string) ([]models.WeeklyEntry, error)
}

// EntryService maps weekly diary rows to journal records. It satisfies
// journal.Backend so a session can run directly against the local store.
type EntryService struct {
	entries WeeklyEntryRepository
}

func NewEntryService(entries WeeklyEntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

func (service *EntryService) Fetch(_ context.Context, userID uint, weekKey string) (journal.Record, bool, error) {
	if !week.IsCanonicalKey(weekKey) {
		return journal.Record{}, false, ErrInvalidWeekKey
	}
	entry, found, err := service.entries.FindByUserAndWeek(userID, weekKey)
	if err != nil {
		return journal.Record{}, false, ErrEntryLoadFailed
	}
	if !found {
		return journal.Empty(), false, nil
	}
	return RecordFromEntry(entry), true, nil
}

func (service *EntryService) Upsert(_ context.Context, userID uint, weekKey string, record journal.Record) error {
	if !week.IsCanonicalKey(weekKey) {
		return ErrInvalidWeekKey
	}
	weekStart, err := week.ParseKey(weekKey)
	if err != nil {
		return ErrInvalidWeekKey
	}
	if err := journal.Validate(weekStart, record); err != nil {
		return err
	}

	entry := EntryFromRecord(userID, weekKey, record)
	if err := service.entries.Upsert(&entry); err != nil {
		return ErrEntrySaveFailed
	}
	return nil
}

func (service *EntryService) ListWeekKeys(_ context.Context, userID uint) ([]string, error) {
	keys, err := service.entries.ListWeekKeys(userID)
	if err != nil {
		return nil, ErrEntryLoadFailed
	}
	return keys, nil
}

func (service *EntryService) FetchMany(_ context.Context, userID uint, weekKeys []string) (map[string]journal.Record, error) {
	entries, err := service.entries.FindByUserAndWeeks(userID, weekKeys)
	if err != nil {
		return nil, ErrEntryLoadFailed
	}
	records := make(map[string]journal.Record, len(entries))
	for _, entry := range entries {
		records[entry.WeekStart] = RecordFromEntry(entry)
	}
	return records, nil
}

// RecordFromEntry normalizes on the way out so rows written by older client
// versions (nil collections, short day sequences) compare cleanly.
func RecordFromEntry(entry models.WeeklyEntry) journal.Record {
	return journal.Normalize(journal.Record{
		HabitTrackers:   entry.HabitTrackers,
		HabitCompletion: entry.HabitCompletion,
		MoodScores:      entry.MoodScores,
		Meals:           entry.Meals,
		Events:          entry.Events,
		Grateful:        entry.Grateful,
		Comment:         entry.Comment,
	})
}

func EntryFromRecord(userID uint, weekKey string, record journal.Record) models.WeeklyEntry {
	normalized := journal.Normalize(record)
	return models.WeeklyEntry{
		UserID:          userID,
		WeekStart:       weekKey,
		HabitTrackers:   normalized.HabitTrackers,
		HabitCompletion: normalized.HabitCompletion,
		MoodScores:      normalized.MoodScores,
		Meals:           normalized.Meals,
		Events:          normalized.Events,
		Grateful:        normalized.Grateful,
		Comment:         normalized.Comment,
	}
}
