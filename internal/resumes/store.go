package resumes

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/telemetry"
)

const idLayout = "20060102_150405"

// Store keeps saved resumes in an insertion-ordered in-memory index backed by a Durable.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]StoredResume
	order   []string
	pending map[string]struct{}
	durable Durable
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides time.Now for id and saved_at generation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore constructs an empty Store. A nil durable keeps records in memory only.
func NewStore(durable Durable, opts ...Option) *Store {
	if durable == nil {
		durable = NopDurable{}
	}
	s := &Store{
		byID:    make(map[string]StoredResume),
		pending: make(map[string]struct{}),
		durable: durable,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save assigns an id and saved_at to doc, writes it to the durable backend and then indexes it.
// The id is reserved while the write runs; the record is visible only once the write succeeds.
func (s *Store) Save(ctx context.Context, doc Document) (StoredResume, error) {
	if err := ctx.Err(); err != nil {
		return StoredResume{}, err
	}

	s.mu.Lock()
	now := s.now()
	rec := StoredResume{
		Document: doc.clone(),
		ID:       s.nextIDLocked(now),
		SavedAt:  now,
	}
	s.pending[rec.ID] = struct{}{}
	s.mu.Unlock()

	if err := s.durable.Write(ctx, rec.clone()); err != nil {
		s.mu.Lock()
		delete(s.pending, rec.ID)
		s.mu.Unlock()
		metrics.IncStoreFailures()
		telemetry.Error("store.durable_write_failed", map[string]any{"resume_id": rec.ID, "error": err})
		return StoredResume{}, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	s.mu.Lock()
	delete(s.pending, rec.ID)
	s.byID[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	s.mu.Unlock()

	metrics.IncResumesSaved()
	return rec.clone(), nil
}

// List returns a summary of every stored resume in insertion order.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].summary())
	}
	return out, nil
}

// Get returns the stored resume or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (StoredResume, error) {
	if err := ctx.Err(); err != nil {
		return StoredResume{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[id]
	if !ok {
		return StoredResume{}, ErrNotFound
	}
	return rec.clone(), nil
}

// Delete removes id from the index and then from the durable backend.
// A durable fault is reported as ErrStoreFailure but the index removal stands.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	if _, ok := s.byID[id]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.removeLocked(id)
	s.mu.Unlock()
	metrics.IncResumesDeleted()

	if err := s.durable.Remove(ctx, id); err != nil {
		metrics.IncStoreFailures()
		telemetry.Error("store.durable_remove_failed", map[string]any{"resume_id": id, "error": err})
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	return nil
}

// Count returns the number of stored resumes.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// nextIDLocked derives the id from the second-granularity timestamp. Saves landing in an
// already used second get a numeric suffix.
func (s *Store) nextIDLocked(now time.Time) string {
	base := "resume_" + now.Format(idLayout)
	if !s.takenLocked(base) {
		return base
	}
	for n := 2; ; n++ {
		id := base + "_" + strconv.Itoa(n)
		if !s.takenLocked(id) {
			return id
		}
	}
}

func (s *Store) takenLocked(id string) bool {
	if _, ok := s.byID[id]; ok {
		return true
	}
	_, ok := s.pending[id]
	return ok
}

func (s *Store) removeLocked(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
