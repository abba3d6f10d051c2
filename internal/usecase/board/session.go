package board

import (
	"context"
	"fmt"
	"sync"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/pagination"
	"jobboard/internal/usecase"

	"github.com/rs/zerolog"
)

// Session is the browsing state of a single consumer: the active filter and
// the current page over the filtered postings. Any change to the filter or to
// the store sends the session back to page 1.
type Session struct {
	mu       sync.Mutex
	jobs     job.Repository
	filter   job.Filter
	page     *pagination.State
	all      []job.Job
	filtered []job.Job
	logger   zerolog.Logger
}

func NewSession(ctx context.Context, jobs job.Repository, pageSize int, logger zerolog.Logger) (*Session, error) {
	s := &Session{
		jobs:   jobs,
		page:   pagination.NewState(pageSize),
		logger: logger.With().Str("component", "board_session").Logger(),
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Watch refreshes the session whenever sub reports a store change. Call the
// returned func to stop.
func (s *Session) Watch(sub job.Subscriber) func() {
	return sub.Subscribe(func(evt job.Event) {
		if err := s.Refresh(context.Background()); err != nil {
			s.logger.Warn().Err(err).Str("event", string(evt.Kind)).Msg("refresh after store event failed")
			return
		}
		s.logger.Debug().Str("event", string(evt.Kind)).Str("job_id", evt.Job.ID).Msg("session refreshed")
	})
}

// Refresh reloads postings from the store.
func (s *Session) Refresh(ctx context.Context) error {
	all, err := s.jobs.List(ctx)
	if err != nil {
		return fmt.Errorf("load jobs: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = all
	s.recompute()
	return nil
}

func (s *Session) UpdateFilters(p job.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.Merge(p)
	s.recompute()
}

func (s *Session) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = job.Filter{}
	s.recompute()
}

func (s *Session) Filters() job.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) HasActiveFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.filter.IsEmpty()
}

// Page returns the items on the current page together with navigation data.
func (s *Session) Page() usecase.BoardPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.page.PageSize()
	cur := s.page.Current()
	start := min((cur-1)*size, len(s.filtered))
	end := min(start+size, len(s.filtered))

	items := make([]job.Job, 0, end-start)
	for _, j := range s.filtered[start:end] {
		items = append(items, j.Clone())
	}
	return usecase.BoardPage{
		Items:       items,
		Total:       len(s.filtered),
		CurrentPage: cur,
		TotalPages:  s.page.TotalPages(),
		PageSize:    size,
		PageNumbers: s.page.Window(),
		HasPrev:     s.page.HasPrev(),
		HasNext:     s.page.HasNext(),
	}
}

func (s *Session) NextPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Next()
}

func (s *Session) PrevPage() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Prev()
}

// GoToPage ignores pages outside the current range.
func (s *Session) GoToPage(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.GoTo(n)
}

// AddJob stores a new posting. The session lock is not held while the store
// runs, since a watched store calls back into Refresh.
func (s *Session) AddJob(ctx context.Context, d job.Draft) (job.Job, error) {
	created, err := s.jobs.Create(ctx, d)
	if err != nil {
		return job.Job{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		return created, err
	}
	return created, nil
}

func (s *Session) JobByID(id string) (job.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.all {
		if j.ID == id {
			return j.Clone(), true
		}
	}
	return job.Job{}, false
}

func (s *Session) Options() job.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return job.Options(s.all)
}

func (s *Session) recompute() {
	s.filtered = job.Apply(s.all, s.filter)
	s.page.SetCount(len(s.filtered))
}
