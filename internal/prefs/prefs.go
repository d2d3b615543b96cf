package prefs

import (
	"errors"
	"log"
	"sync"

	"github.com/marisolvale/weekling/internal/models"
	"github.com/marisolvale/weekling/internal/week"
)

var ErrInvalidWeekStart = errors.New("invalid week start preference")

// Store is a per-user key-value preference store.
type Store interface {
	Get(userID uint, name string) (string, bool, error)
	Set(userID uint, name string, value string) error
}

// MemoryStore is the in-process fallback used when no durable store is
// available. Values do not survive a restart.
type MemoryStore struct {
	mu     sync.Mutex
	values map[uint]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[uint]map[string]string)}
}

func (store *MemoryStore) Get(userID uint, name string) (string, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	value, ok := store.values[userID][name]
	return value, ok, nil
}

func (store *MemoryStore) Set(userID uint, name string, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.values[userID] == nil {
		store.values[userID] = make(map[string]string)
	}
	store.values[userID][name] = value
	return nil
}

// FallbackStore degrades gracefully: reads and writes go to the primary
// store, and fall back to an in-memory copy when the primary errors.
type FallbackStore struct {
	primary  Store
	fallback *MemoryStore
	logger   *log.Logger
}

func NewFallbackStore(primary Store, logger *log.Logger) *FallbackStore {
	if logger == nil {
		logger = log.Default()
	}
	return &FallbackStore{
		primary:  primary,
		fallback: NewMemoryStore(),
		logger:   logger,
	}
}

func (store *FallbackStore) Get(userID uint, name string) (string, bool, error) {
	if store.primary != nil {
		value, ok, err := store.primary.Get(userID, name)
		if err == nil {
			return value, ok, nil
		}
		store.logger.Printf("preference read %s failed, using in-memory fallback: %v", name, err)
	}
	return store.fallback.Get(userID, name)
}

func (store *FallbackStore) Set(userID uint, name string, value string) error {
	if store.primary != nil {
		err := store.primary.Set(userID, name, value)
		if err == nil {
			return store.fallback.Set(userID, name, value)
		}
		store.logger.Printf("preference write %s failed, keeping in-memory fallback: %v", name, err)
	}
	return store.fallback.Set(userID, name, value)
}

// WeekStart reads the user's display week-start preference, defaulting to
// Sunday on any miss or error.
func WeekStart(store Store, userID uint) week.StartDay {
	value, ok, err := store.Get(userID, models.PrefWeekStart)
	if err != nil || !ok {
		return week.StartSunday
	}
	return week.ParseStartDay(value)
}

func SetWeekStart(store Store, userID uint, value string) (week.StartDay, error) {
	if value != string(week.StartSunday) && value != string(week.StartMonday) {
		return week.StartSunday, ErrInvalidWeekStart
	}
	if err := store.Set(userID, models.PrefWeekStart, value); err != nil {
		return week.StartSunday, err
	}
	return week.StartDay(value), nil
}
