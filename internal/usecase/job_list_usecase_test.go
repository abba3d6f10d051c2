package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/seeder"

	"github.com/rs/zerolog"
)

type mockJobRepo struct {
	items []job.Job
	err   error
	calls int
}

func (m *mockJobRepo) List(context.Context) ([]job.Job, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Job, len(m.items))
	copy(out, m.items)
	return out, nil
}
func (m *mockJobRepo) GetByID(context.Context, string) (job.Job, error) {
	return job.Job{}, job.ErrNotFound
}
func (m *mockJobRepo) Create(context.Context, job.Draft) (job.Job, error) { return job.Job{}, m.err }
func (m *mockJobRepo) Update(context.Context, string, func(job.Job) (job.Job, error)) (job.Job, error) {
	return job.Job{}, m.err
}
func (m *mockJobRepo) Delete(context.Context, string) (job.Job, error) { return job.Job{}, m.err }
func (m *mockJobRepo) Count(context.Context) (int, error)             { return len(m.items), m.err }

type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: make(map[string][]byte)} }

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func numberedJobs(n int) []job.Job {
	out := make([]job.Job, 0, n)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		out = append(out, job.Job{
			ID:         fmt.Sprintf("%d", i+1),
			Title:      "Engineer",
			JobType:    job.TypeFullTime,
			PostedDate: base.AddDate(0, 0, -i),
		})
	}
	return out
}

func newListUC(repo job.Repository, cache SearchCache) *JobList {
	return NewJobListUsecase(repo, cache, JobListConfig{PageSize: 12, MaxLimit: 50}, zerolog.Nop())
}

func TestJobListUsecase_ListJobs_InvalidInput(t *testing.T) {
	uc := newListUC(&mockJobRepo{}, nil)
	for _, p := range []JobListParams{{Limit: -1}, {Offset: -1}, {Limit: 51}} {
		_, err := uc.ListJobs(context.Background(), p)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestJobListUsecase_ListJobs_RepoFailure(t *testing.T) {
	uc := newListUC(&mockJobRepo{err: errors.New("down")}, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobListUsecase_ListJobs_NoLimitReturnsEverything(t *testing.T) {
	uc := newListUC(&mockJobRepo{items: numberedJobs(7)}, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{Offset: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Jobs) != 7 || res.Total != 7 {
		t.Fatalf("expected all 7 jobs, got %d (total %d)", len(res.Jobs), res.Total)
	}
	if res.HasMore {
		t.Fatalf("expected hasMore=false without limit")
	}
}

func TestJobListUsecase_ListJobs_LimitOffset(t *testing.T) {
	uc := newListUC(&mockJobRepo{items: numberedJobs(25)}, nil)

	tests := []struct {
		limit, offset int
		wantLen       int
		wantFirst     string
		wantMore      bool
	}{
		{limit: 10, offset: 0, wantLen: 10, wantFirst: "1", wantMore: true},
		{limit: 10, offset: 10, wantLen: 10, wantFirst: "11", wantMore: true},
		{limit: 10, offset: 20, wantLen: 5, wantFirst: "21", wantMore: false},
		{limit: 10, offset: 15, wantLen: 10, wantFirst: "16", wantMore: false},
		{limit: 10, offset: 40, wantLen: 0, wantMore: false},
	}
	for _, tt := range tests {
		res, err := uc.ListJobs(context.Background(), JobListParams{Limit: tt.limit, Offset: tt.offset})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Total != 25 {
			t.Fatalf("limit=%d offset=%d: expected total 25, got %d", tt.limit, tt.offset, res.Total)
		}
		if len(res.Jobs) != tt.wantLen {
			t.Fatalf("limit=%d offset=%d: expected %d jobs, got %d", tt.limit, tt.offset, tt.wantLen, len(res.Jobs))
		}
		if tt.wantLen > 0 && res.Jobs[0].ID != tt.wantFirst {
			t.Fatalf("limit=%d offset=%d: expected first %s, got %s", tt.limit, tt.offset, tt.wantFirst, res.Jobs[0].ID)
		}
		if res.HasMore != tt.wantMore {
			t.Fatalf("limit=%d offset=%d: expected hasMore=%v", tt.limit, tt.offset, tt.wantMore)
		}
	}
}

func TestJobListUsecase_ListJobs_HugeOffset(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{items: seeder.DefaultJobs()}, nil, JobListConfig{PageSize: 12, MaxLimit: 100}, zerolog.Nop())

	for _, offset := range []int{math.MaxInt - 5, math.MaxInt} {
		res, err := uc.ListJobs(context.Background(), JobListParams{Limit: 10, Offset: offset})
		if err != nil {
			t.Fatalf("offset=%d: unexpected err: %v", offset, err)
		}
		if len(res.Jobs) != 0 || res.Total != 10 || res.HasMore {
			t.Fatalf("offset=%d: expected empty window of 10, got %d jobs total=%d hasMore=%v", offset, len(res.Jobs), res.Total, res.HasMore)
		}
	}

	res, err := uc.ListJobs(context.Background(), JobListParams{Limit: 100, Offset: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Jobs) != 7 || res.HasMore {
		t.Fatalf("expected the 7 remaining jobs, got %d hasMore=%v", len(res.Jobs), res.HasMore)
	}
}

func TestJobListUsecase_ListJobs_SortsByPostedDateDesc(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	repo := &mockJobRepo{items: []job.Job{
		{ID: "old", PostedDate: d(1)},
		{ID: "new-a", PostedDate: d(9)},
		{ID: "mid", PostedDate: d(5)},
		{ID: "new-b", PostedDate: d(9)},
	}}
	uc := newListUC(repo, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"new-a", "new-b", "mid", "old"}
	for i, id := range want {
		if res.Jobs[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, res.Jobs[i].ID)
		}
	}
}

func TestJobListUsecase_ListJobs_Filters(t *testing.T) {
	uc := newListUC(&mockJobRepo{items: seeder.DefaultJobs()}, nil)

	res, err := uc.ListJobs(context.Background(), JobListParams{JobType: "full-time"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 8 {
		t.Fatalf("expected 8 full-time jobs, got %d", res.Total)
	}

	res, err = uc.ListJobs(context.Background(), JobListParams{Search: "ENGINEER", Location: "kandy"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 1 || res.Jobs[0].Title != "QA Engineer" {
		t.Fatalf("expected only QA Engineer, got %+v", res.Jobs)
	}
}

func TestJobListUsecase_ListJobs_UsesCache(t *testing.T) {
	repo := &mockJobRepo{items: numberedJobs(3)}
	cache := newMapCache()
	uc := newListUC(repo, cache)

	first, err := uc.ListJobs(context.Background(), JobListParams{Search: "eng", Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.ListJobs(context.Background(), JobListParams{Search: " ENG ", Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.calls)
	}
	if second.Total != first.Total || len(second.Jobs) != len(first.Jobs) || !second.HasMore {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestJobListUsecase_BrowseJobs(t *testing.T) {
	uc := newListUC(&mockJobRepo{items: numberedJobs(25)}, nil)

	page, err := uc.BrowseJobs(context.Background(), BoardParams{Page: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Items) != 1 || page.TotalPages != 3 || page.CurrentPage != 3 {
		t.Fatalf("unexpected page: items=%d total_pages=%d current=%d", len(page.Items), page.TotalPages, page.CurrentPage)
	}
	if page.HasNext || !page.HasPrev {
		t.Fatalf("unexpected navigation flags")
	}

	page, err = uc.BrowseJobs(context.Background(), BoardParams{Page: 99, Filter: job.Filter{Search: "nothing"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Total != 0 || page.TotalPages != 1 || page.CurrentPage != 1 || len(page.PageNumbers) != 1 {
		t.Fatalf("unexpected empty page: %+v", page)
	}

	if _, err := uc.BrowseJobs(context.Background(), BoardParams{PageSize: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_FilterOptions(t *testing.T) {
	uc := newListUC(&mockJobRepo{items: seeder.DefaultJobs()}, nil)

	opts, err := uc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(opts.Companies) != 10 || len(opts.Locations) != 3 || len(opts.JobTypes) != 4 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
