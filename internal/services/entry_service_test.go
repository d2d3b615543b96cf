package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/marisolvale/weekling/internal/journal"
	"github.com/marisolvale/weekling/internal/models"
)

type entryRepoStub struct {
	rows      map[string]models.WeeklyEntry
	findErr   error
	upsertErr error
	listErr   error
}

func newEntryRepoStub() *entryRepoStub {
	return &entryRepoStub{rows: make(map[string]models.WeeklyEntry)}
}

func (stub *entryRepoStub) FindByUserAndWeek(_ uint, weekStart string) (models.WeeklyEntry, bool, error) {
	if stub.findErr != nil {
		return models.WeeklyEntry{}, false, stub.findErr
	}
	entry, ok := stub.rows[weekStart]
	return entry, ok, nil
}

func (stub *entryRepoStub) Upsert(entry *models.WeeklyEntry) error {
	if stub.upsertErr != nil {
		return stub.upsertErr
	}
	stub.rows[entry.WeekStart] = *entry
	return nil
}

func (stub *entryRepoStub) ListWeekKeys(_ uint) ([]string, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	keys := make([]string, 0, len(stub.rows))
	for key := range stub.rows {
		keys = append(keys, key)
	}
	return keys, nil
}

func (stub *entryRepoStub) FindByUserAndWeeks(_ uint, weekStarts []string) ([]models.WeeklyEntry, error) {
	if stub.findErr != nil {
		return nil, stub.findErr
	}
	entries := make([]models.WeeklyEntry, 0, len(weekStarts))
	for _, key := range weekStarts {
		if entry, ok := stub.rows[key]; ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func TestEntryServiceFetchMissingWeekReturnsEmptyDefault(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newEntryRepoStub())

	record, found, err := service.Fetch(context.Background(), 1, "2024-06-02")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if found {
		t.Fatal("expected missing week")
	}
	if !record.IsEmpty() {
		t.Fatalf("expected empty default record, got %+v", record)
	}
}

func TestEntryServiceUpsertThenFetchRoundTrips(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newEntryRepoStub())
	ctx := context.Background()

	record := journal.Empty()
	record.AddHabit("Run")
	record.ToggleHabitDay("Run", 0)
	record.SetMood(1, 4)

	if err := service.Upsert(ctx, 1, "2024-06-02", record); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	stored, found, err := service.Fetch(ctx, 1, "2024-06-02")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !found {
		t.Fatal("expected stored week")
	}
	if !journal.Equal(stored, record) {
		t.Fatalf("expected stored record to match, got %+v", stored)
	}
}

func TestEntryServiceRejectsNonCanonicalKeys(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newEntryRepoStub())
	ctx := context.Background()

	// 2024-06-03 is a Monday.
	for _, key := range []string{"2024-06-03", "2024-6-2", ""} {
		if _, _, err := service.Fetch(ctx, 1, key); !errors.Is(err, ErrInvalidWeekKey) {
			t.Fatalf("fetch %q: expected ErrInvalidWeekKey, got %v", key, err)
		}
		if err := service.Upsert(ctx, 1, key, journal.Empty()); !errors.Is(err, ErrInvalidWeekKey) {
			t.Fatalf("upsert %q: expected ErrInvalidWeekKey, got %v", key, err)
		}
	}
}

func TestEntryServiceUpsertRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	service := NewEntryService(newEntryRepoStub())

	record := journal.Empty()
	record.Events = append(record.Events,
		journal.Event{ID: "a", Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), Text: "outside"},
	)

	err := service.Upsert(context.Background(), 1, "2024-06-02", record)
	if !errors.Is(err, journal.ErrEventOutsideWeek) {
		t.Fatalf("expected ErrEventOutsideWeek, got %v", err)
	}
}

func TestEntryServiceWrapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	stub := newEntryRepoStub()
	stub.findErr = errors.New("disk gone")
	stub.upsertErr = errors.New("disk gone")
	stub.listErr = errors.New("disk gone")
	service := NewEntryService(stub)
	ctx := context.Background()

	if _, _, err := service.Fetch(ctx, 1, "2024-06-02"); !errors.Is(err, ErrEntryLoadFailed) {
		t.Fatalf("expected ErrEntryLoadFailed, got %v", err)
	}
	if err := service.Upsert(ctx, 1, "2024-06-02", journal.Empty()); !errors.Is(err, ErrEntrySaveFailed) {
		t.Fatalf("expected ErrEntrySaveFailed, got %v", err)
	}
	if _, err := service.ListWeekKeys(ctx, 1); !errors.Is(err, ErrEntryLoadFailed) {
		t.Fatalf("expected ErrEntryLoadFailed from list, got %v", err)
	}
	if _, err := service.FetchMany(ctx, 1, []string{"2024-06-02"}); !errors.Is(err, ErrEntryLoadFailed) {
		t.Fatalf("expected ErrEntryLoadFailed from batch, got %v", err)
	}
}

func TestEntryServiceNormalizesLegacyRows(t *testing.T) {
	t.Parallel()

	stub := newEntryRepoStub()
	// Row written by an older client: nil collections and a short mood row.
	stub.rows["2024-06-02"] = models.WeeklyEntry{
		UserID:     1,
		WeekStart:  "2024-06-02",
		MoodScores: []int{3},
	}
	service := NewEntryService(stub)

	record, found, err := service.Fetch(context.Background(), 1, "2024-06-02")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !found {
		t.Fatal("expected stored week")
	}
	if len(record.MoodScores) != journal.DaysPerWeek {
		t.Fatalf("expected padded mood row, got %v", record.MoodScores)
	}
	if record.HabitTrackers == nil || record.Events == nil {
		t.Fatal("expected nil collections replaced with empty ones")
	}
}
