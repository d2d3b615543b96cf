package journal

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/marisolvale/weekling/internal/week"
)

var (
	ErrInvalidWeekKey = errors.New("invalid canonical week key")
	ErrSaveFailed     = errors.New("save week failed")
)

// Backend is the remote row store addressed by (userID, canonical week key).
type Backend interface {
	Fetch(ctx context.Context, userID uint, weekKey string) (Record, bool, error)
	Upsert(ctx context.Context, userID uint, weekKey string, record Record) error
	ListWeekKeys(ctx context.Context, userID uint) ([]string, error)
	FetchMany(ctx context.Context, userID uint, weekKeys []string) (map[string]Record, error)
}

// Session tracks per-week working state against the last-committed state for
// one user and coordinates writes to the backend. Load, save and refresh for
// the same week key are serialized so a slow stale fetch can never clobber a
// newer save.
type Session struct {
	userID  uint
	backend Backend
	logger  *log.Logger

	mu        sync.Mutex
	working   map[string]Record
	committed map[string]Record
	dirty     map[string]bool
	pending   map[string]Record
	activeKey string
	lastSaved time.Time
	hasSaved  bool

	opMu    sync.Mutex
	opLocks map[string]*sync.Mutex

	saves sync.WaitGroup
}

func NewSession(userID uint, backend Backend, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		userID:    userID,
		backend:   backend,
		logger:    logger,
		working:   make(map[string]Record),
		committed: make(map[string]Record),
		dirty:     make(map[string]bool),
		pending:   make(map[string]Record),
		opLocks:   make(map[string]*sync.Mutex),
	}
}

func (session *Session) opLock(weekKey string) *sync.Mutex {
	session.opMu.Lock()
	defer session.opMu.Unlock()
	lock, ok := session.opLocks[weekKey]
	if !ok {
		lock = &sync.Mutex{}
		session.opLocks[weekKey] = lock
	}
	return lock
}

func (session *Session) Get(weekKey string) Record {
	session.mu.Lock()
	defer session.mu.Unlock()
	if record, ok := session.working[weekKey]; ok {
		return record.Clone()
	}
	return Empty()
}

func (session *Session) Update(weekKey string, fn func(Record) Record) {
	session.mu.Lock()
	defer session.mu.Unlock()

	base, ok := session.working[weekKey]
	if !ok {
		base = Empty()
	}
	session.working[weekKey] = fn(base.Clone())
	session.recomputeDirtyLocked(weekKey)
}

func (session *Session) IsDirty(weekKey string) bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.dirty[weekKey]
}

// Load fetches the week from the backend and installs it as both working and
// committed state. A fetch failure is recovered locally: existing working
// state is kept, otherwise an empty default is installed so the client stays
// usable. The error is logged, never returned.
func (session *Session) Load(ctx context.Context, weekKey string) error {
	return session.loadWeek(ctx, weekKey)
}

// Refresh is the explicit, user-initiated discard-and-reload for one week.
func (session *Session) Refresh(ctx context.Context, weekKey string) error {
	return session.loadWeek(ctx, weekKey)
}

func (session *Session) loadWeek(ctx context.Context, weekKey string) error {
	if !week.IsCanonicalKey(weekKey) {
		return ErrInvalidWeekKey
	}

	lock := session.opLock(weekKey)
	lock.Lock()
	defer lock.Unlock()

	record, found, err := session.backend.Fetch(ctx, session.userID, weekKey)
	if err != nil {
		session.logger.Printf("load week %s failed: %v", weekKey, err)
		session.mu.Lock()
		defer session.mu.Unlock()
		if _, ok := session.working[weekKey]; !ok {
			session.installLocked(weekKey, Empty(), false)
		}
		return nil
	}

	if !found {
		record = Empty()
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.installLocked(weekKey, record, found)
	return nil
}

func (session *Session) installLocked(weekKey string, record Record, persisted bool) {
	session.working[weekKey] = record.Clone()
	session.committed[weekKey] = record.Clone()
	delete(session.dirty, weekKey)
	delete(session.pending, weekKey)
	if persisted {
		session.lastSaved = time.Now()
		session.hasSaved = true
	}
}

// SaveNow writes the working record for the week and, on success, promotes
// it to committed state. On failure dirty state is left untouched so a
// manual retry still has the edits; there are no automatic retries.
func (session *Session) SaveNow(ctx context.Context, weekKey string) error {
	if !week.IsCanonicalKey(weekKey) {
		return ErrInvalidWeekKey
	}

	lock := session.opLock(weekKey)
	lock.Lock()
	defer lock.Unlock()

	session.mu.Lock()
	record, ok := session.working[weekKey]
	if !ok {
		session.mu.Unlock()
		return nil
	}
	payload := record.Clone()
	session.mu.Unlock()

	if err := session.backend.Upsert(ctx, session.userID, weekKey, payload); err != nil {
		session.logger.Printf("save week %s failed: %v", weekKey, err)
		return ErrSaveFailed
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.committed[weekKey] = payload
	// Edits made while the upsert was in flight stay dirty.
	session.recomputeDirtyLocked(weekKey)
	session.lastSaved = time.Now()
	session.hasSaved = true
	return nil
}

// SetActiveWeek records the displayed week and triggers the best-effort
// background save of the week being navigated away from.
func (session *Session) SetActiveWeek(weekKey string) {
	session.mu.Lock()
	oldKey := session.activeKey
	session.activeKey = weekKey
	session.mu.Unlock()
	session.OnActiveWeekChange(oldKey, weekKey)
}

// OnActiveWeekChange fires an asynchronous save of the old week's pending
// payload. The pending cache is cleared optimistically; a failure is logged
// only, since the user has already navigated away.
func (session *Session) OnActiveWeekChange(oldKey string, newKey string) {
	if oldKey == "" || oldKey == newKey {
		return
	}

	session.mu.Lock()
	payload, ok := session.pending[oldKey]
	if ok {
		delete(session.pending, oldKey)
	}
	session.mu.Unlock()
	if !ok {
		return
	}

	// The op lock is taken before returning, so a Load for the old key
	// issued right after navigation queues behind this save instead of
	// racing it and reinstalling the stale row.
	lock := session.opLock(oldKey)
	lock.Lock()

	session.saves.Add(1)
	go func() {
		defer session.saves.Done()
		defer lock.Unlock()

		if err := session.backend.Upsert(context.Background(), session.userID, oldKey, payload); err != nil {
			session.logger.Printf("auto-save on week change failed for %s: %v", oldKey, err)
			return
		}

		session.mu.Lock()
		defer session.mu.Unlock()
		session.committed[oldKey] = payload.Clone()
		session.recomputeDirtyLocked(oldKey)
		session.lastSaved = time.Now()
		session.hasSaved = true
	}()
}

// OnBeforeExit reports whether any week still has unsaved changes. The
// signal is advisory only; no synchronous save is attempted.
func (session *Session) OnBeforeExit() bool {
	session.mu.Lock()
	defer session.mu.Unlock()
	for _, isDirty := range session.dirty {
		if isDirty {
			return true
		}
	}
	return false
}

// Flush waits for background week-change saves to finish.
func (session *Session) Flush() {
	session.saves.Wait()
}

func (session *Session) ActiveKey() string {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.activeKey
}

func (session *Session) LastSaved() (time.Time, bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.lastSaved, session.hasSaved
}

func (session *Session) recomputeDirtyLocked(weekKey string) {
	record, ok := session.working[weekKey]
	if !ok {
		delete(session.dirty, weekKey)
		delete(session.pending, weekKey)
		return
	}

	isDirty := false
	if committed, loaded := session.committed[weekKey]; loaded {
		isDirty = !Equal(record, committed)
	} else {
		isDirty = !record.IsEmpty()
	}

	if isDirty {
		session.dirty[weekKey] = true
		session.pending[weekKey] = record.Clone()
		return
	}
	delete(session.dirty, weekKey)
	delete(session.pending, weekKey)
}
