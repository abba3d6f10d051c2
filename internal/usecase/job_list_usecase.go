package usecase

import (
	"context"
	"slices"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/pagination"

	"github.com/rs/zerolog"
)

type JobListParams struct {
	Search   string
	JobType  string
	Location string
	Company  string
	Limit    int
	Offset   int
}

type JobListResult struct {
	Jobs    []job.Job
	Total   int
	HasMore bool
}

type BoardParams struct {
	Filter   job.Filter
	Page     int
	PageSize int
}

type BoardPage struct {
	Items       []job.Job
	Total       int
	CurrentPage int
	TotalPages  int
	PageSize    int
	PageNumbers []int
	HasPrev     bool
	HasNext     bool
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) (JobListResult, error)
	BrowseJobs(ctx context.Context, params BoardParams) (BoardPage, error)
	FilterOptions(ctx context.Context) (job.FilterOptions, error)
}

type JobListConfig struct {
	PageSize int
	MaxLimit int
}

type JobList struct {
	jobs   job.Repository
	cache  SearchCache
	cfg    JobListConfig
	logger zerolog.Logger
}

func NewJobListUsecase(jobs job.Repository, cache SearchCache, cfg JobListConfig, logger zerolog.Logger) *JobList {
	if cfg.PageSize <= 0 {
		cfg.PageSize = pagination.DefaultPageSize
	}
	return &JobList{jobs: jobs, cache: cache, cfg: cfg, logger: logger.With().Str("component", "job_list").Logger()}
}

// ListJobs filters, orders by postedDate (newest first) and then windows the
// result with limit/offset. Total counts every match, not just the window.
// Offset only applies when a limit is given.
func (u *JobList) ListJobs(ctx context.Context, params JobListParams) (JobListResult, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return JobListResult{}, ErrInvalidInput
	}
	if u.cfg.MaxLimit > 0 && params.Limit > u.cfg.MaxLimit {
		return JobListResult{}, ErrInvalidInput
	}

	// read before List: a write racing the lookup bumps the generation, so
	// whatever gets stored below lands on a key nobody asks for again.
	cacheKey := JobsSearchCacheKey(params, u.generation())
	if u.cache != nil {
		var cached JobListResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Debug().Str("key", cacheKey).Msg("cache hit")
			return cached, nil
		}
		u.logger.Debug().Str("key", cacheKey).Msg("cache miss")
	}

	all, err := u.jobs.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list jobs")
		return JobListResult{}, ErrInternal
	}

	matched := job.Apply(all, params.filter())
	slices.SortStableFunc(matched, func(a, b job.Job) int {
		return b.PostedDate.Compare(a.PostedDate)
	})

	out := JobListResult{Jobs: matched, Total: len(matched)}
	if params.Limit > 0 {
		// offset+limit may overflow int
		start := min(params.Offset, len(matched))
		end := start + min(params.Limit, len(matched)-start)
		out.Jobs = matched[start:end]
		out.HasMore = params.Offset < out.Total && params.Limit < out.Total-params.Offset
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err != nil {
			u.logger.Debug().Err(err).Str("key", cacheKey).Msg("cache set failed")
		}
	}
	return out, nil
}

func (u *JobList) generation() uint64 {
	if g, ok := u.jobs.(Generational); ok {
		return g.Generation()
	}
	return 0
}

// BrowseJobs returns one board page in store order. Out-of-range pages are
// clamped.
func (u *JobList) BrowseJobs(ctx context.Context, params BoardParams) (BoardPage, error) {
	if params.PageSize < 0 {
		return BoardPage{}, ErrInvalidInput
	}
	size := params.PageSize
	if size == 0 {
		size = u.cfg.PageSize
	}
	if u.cfg.MaxLimit > 0 && size > u.cfg.MaxLimit {
		return BoardPage{}, ErrInvalidInput
	}

	all, err := u.jobs.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list jobs")
		return BoardPage{}, ErrInternal
	}

	p := pagination.Slice(job.Apply(all, params.Filter), size, params.Page)
	return BoardPage{
		Items:       p.Items,
		Total:       p.Total,
		CurrentPage: p.Page,
		TotalPages:  p.TotalPages,
		PageSize:    p.PageSize,
		PageNumbers: pagination.Window(p.Page, p.TotalPages, pagination.DefaultWindow),
		HasPrev:     p.HasPrev(),
		HasNext:     p.HasNext(),
	}, nil
}

func (u *JobList) FilterOptions(ctx context.Context) (job.FilterOptions, error) {
	all, err := u.jobs.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list jobs")
		return job.FilterOptions{}, ErrInternal
	}
	return job.Options(all), nil
}
