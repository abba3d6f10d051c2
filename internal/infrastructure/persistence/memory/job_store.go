package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	_ job.Repository = (*JobStore)(nil)
	_ job.Subscriber = (*JobStore)(nil)
)

const maxIDAttempts = 8

type Option func(*JobStore)

func WithClock(now func() time.Time) Option {
	return func(s *JobStore) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(s *JobStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *JobStore) {
		s.logger = logger
	}
}

// JobStore holds postings for the lifetime of the process, newest first.
type JobStore struct {
	mu   sync.RWMutex
	jobs []job.Job

	// gen counts mutations; readers use it to tell snapshots apart.
	gen uint64

	subMu  sync.RWMutex
	subs   map[int]func(job.Event)
	nextID int

	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

func NewJobStore(opts ...Option) *JobStore {
	s := &JobStore{
		jobs:   make([]job.Job, 0),
		subs:   make(map[int]func(job.Event)),
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed appends jobs in the given order. It fails without changing the store
// if any id is blank or already present.
func (s *JobStore) Seed(ctx context.Context, jobs []job.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.jobs)+len(jobs))
	for _, j := range s.jobs {
		seen[j.ID] = struct{}{}
	}
	for _, j := range jobs {
		if j.ID == "" {
			return fmt.Errorf("seed job %q: empty id", j.Title)
		}
		if _, ok := seen[j.ID]; ok {
			return fmt.Errorf("seed job %s: %w", j.ID, job.ErrDuplicateID)
		}
		seen[j.ID] = struct{}{}
	}

	for _, j := range jobs {
		s.jobs = append(s.jobs, j.Clone())
	}
	s.gen++
	s.logger.Debug().Int("seeded", len(jobs)).Int("total", len(s.jobs)).Msg("job store seeded")
	return nil
}

func (s *JobStore) List(ctx context.Context) ([]job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j.Clone())
	}
	return out, nil
}

func (s *JobStore) GetByID(ctx context.Context, id string) (job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return job.Job{}, job.ErrNotFound
	}
	return s.jobs[idx].Clone(), nil
}

func (s *JobStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs), nil
}

// Generation changes after every successful mutation.
func (s *JobStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Create assigns a fresh id and today's date, then inserts at the front.
func (s *JobStore) Create(ctx context.Context, d job.Draft) (job.Job, error) {
	s.mu.Lock()
	id, err := s.freshID()
	if err != nil {
		s.mu.Unlock()
		return job.Job{}, err
	}
	created := d.Job(id, job.PostedOn(s.now()))

	s.jobs = append(s.jobs, job.Job{})
	copy(s.jobs[1:], s.jobs)
	s.jobs[0] = created
	s.gen++
	total := len(s.jobs)
	s.mu.Unlock()

	s.logger.Debug().Str("job_id", id).Int("total", total).Msg("job created")
	s.publish(job.EventCreated, created)
	return created.Clone(), nil
}

// Update replaces the job with mutate's result. ID and PostedDate cannot be
// changed. If mutate fails the store is left untouched.
func (s *JobStore) Update(ctx context.Context, id string, mutate func(job.Job) (job.Job, error)) (job.Job, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return job.Job{}, job.ErrNotFound
	}

	current := s.jobs[idx]
	next, err := mutate(current.Clone())
	if err != nil {
		s.mu.Unlock()
		return job.Job{}, err
	}
	next.ID = current.ID
	next.PostedDate = current.PostedDate
	next = next.Clone()
	s.jobs[idx] = next
	s.gen++
	s.mu.Unlock()

	s.logger.Debug().Str("job_id", id).Msg("job updated")
	s.publish(job.EventUpdated, next)
	return next.Clone(), nil
}

func (s *JobStore) Delete(ctx context.Context, id string) (job.Job, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return job.Job{}, job.ErrNotFound
	}
	removed := s.jobs[idx]
	s.jobs = append(s.jobs[:idx], s.jobs[idx+1:]...)
	s.gen++
	total := len(s.jobs)
	s.mu.Unlock()

	s.logger.Debug().Str("job_id", id).Int("total", total).Msg("job deleted")
	s.publish(job.EventDeleted, removed)
	return removed.Clone(), nil
}

// Subscribe registers fn for events published after each successful
// mutation. fn runs on the mutating goroutine after the store lock is
// released, so it may read from the store.
func (s *JobStore) Subscribe(fn func(job.Event)) func() {
	if fn == nil {
		return func() {}
	}

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *JobStore) publish(kind job.EventKind, j job.Job) {
	s.subMu.RLock()
	subs := make([]func(job.Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.RUnlock()

	evt := job.Event{Kind: kind, Job: j, At: s.now().UTC()}
	for _, fn := range subs {
		fn(job.Event{Kind: evt.Kind, Job: evt.Job.Clone(), At: evt.At})
	}
}

// freshID draws ids until one is unused. Callers hold s.mu.
func (s *JobStore) freshID() (string, error) {
	for range maxIDAttempts {
		if id := s.newID(); id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("allocate job id after %d attempts: %w", maxIDAttempts, job.ErrDuplicateID)
}

func (s *JobStore) indexOf(id string) int {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return i
		}
	}
	return -1
}
