package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/infrastructure/persistence/memory"
	"jobboard/internal/seeder"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() JobInput {
	return JobInput{
		Title:          "Platform Engineer",
		Company:        "Acme",
		Location:       "Remote",
		JobType:        "contract",
		Description:    "Run the platform.",
		Requirements:   []string{" Go ", "", "Go", "Kubernetes"},
		ApplicationURL: "https://acme.example/jobs/1",
	}
}

func newSeededStore(t *testing.T) *memory.JobStore {
	t.Helper()
	now := func() time.Time { return time.Date(2024, 2, 1, 15, 4, 5, 0, time.UTC) }
	store := memory.NewJobStore(memory.WithClock(now))
	require.NoError(t, store.Seed(context.Background(), seeder.DefaultJobs()))
	return store
}

func TestJobs_CreateJob(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	uc := NewJobUsecase(store, zerolog.Nop())

	created, err := uc.CreateJob(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-02-01", created.PostedDate.Format(job.DateLayout))
	assert.Equal(t, []string{"Go", "Kubernetes"}, created.Requirements)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 11)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestJobs_CreateJob_MissingFields(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	uc := NewJobUsecase(store, zerolog.Nop())

	in := validInput()
	in.Title = "   "
	in.Description = ""
	in.JobType = "bogus"

	_, err := uc.CreateJob(ctx, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"title", "description"}, verr.MissingFields)
	assert.Empty(t, verr.InvalidFields)
	assert.Equal(t, "Missing required fields: title, description", verr.Error())

	n, _ := store.Count(ctx)
	assert.Equal(t, 10, n)
}

func TestJobs_CreateJob_InvalidValues(t *testing.T) {
	uc := NewJobUsecase(newSeededStore(t), zerolog.Nop())

	in := validInput()
	in.JobType = "freelance"
	_, err := uc.CreateJob(context.Background(), in)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"jobType"}, verr.InvalidFields)
	assert.Equal(t, "Invalid job type", verr.Error())

	in = validInput()
	in.ApplicationURL = "not a url"
	_, err = uc.CreateJob(context.Background(), in)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Invalid application url", verr.Error())
}

func TestJobs_CreateJob_ApplicationURLOptional(t *testing.T) {
	uc := NewJobUsecase(newSeededStore(t), zerolog.Nop())

	in := validInput()
	in.ApplicationURL = ""
	_, err := uc.CreateJob(context.Background(), in)
	assert.NoError(t, err)
}

func TestJobs_GetJob(t *testing.T) {
	uc := NewJobUsecase(newSeededStore(t), zerolog.Nop())

	j, err := uc.GetJob(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "UX Designer", j.Title)

	_, err = uc.GetJob(context.Background(), "nope")
	assert.ErrorIs(t, err, job.ErrNotFound)

	_, err = uc.GetJob(context.Background(), " ")
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestJobs_ReplaceJob(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	uc := NewJobUsecase(store, zerolog.Nop())

	before, err := store.GetByID(ctx, "2")
	require.NoError(t, err)

	in := validInput()
	in.Salary = ""
	updated, err := uc.ReplaceJob(ctx, "2", in)
	require.NoError(t, err)

	assert.Equal(t, "2", updated.ID)
	assert.Equal(t, before.PostedDate, updated.PostedDate)
	assert.Equal(t, "Platform Engineer", updated.Title)
	assert.Empty(t, updated.Salary)

	_, err = uc.ReplaceJob(ctx, "missing", in)
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestJobs_PatchJob(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	uc := NewJobUsecase(store, zerolog.Nop())

	salary := "LKR 500,000"
	reqs := []string{"Figma"}
	updated, err := uc.PatchJob(ctx, "3", JobPatch{Salary: &salary, Requirements: &reqs})
	require.NoError(t, err)
	assert.Equal(t, "UX Designer", updated.Title)
	assert.Equal(t, salary, updated.Salary)
	assert.Equal(t, reqs, updated.Requirements)

	blank := ""
	_, err = uc.PatchJob(ctx, "3", JobPatch{Company: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)

	stored, err := store.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "99X Technology", stored.Company)
}

func TestJobs_DeleteJob(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	uc := NewJobUsecase(store, zerolog.Nop())

	removed, err := uc.DeleteJob(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Senior Frontend Developer", removed.Title)

	_, err = uc.DeleteJob(ctx, "1")
	assert.ErrorIs(t, err, job.ErrNotFound)

	n, _ := store.Count(ctx)
	assert.Equal(t, 9, n)
}

func TestJobs_StoreFailureIsInternal(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{err: errors.New("disk on fire")}, zerolog.Nop())

	_, err := uc.CreateJob(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.DeleteJob(context.Background(), "1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSeededBoard_FullTimeFitsOnePage(t *testing.T) {
	store := newSeededStore(t)
	uc := NewJobListUsecase(store, nil, JobListConfig{}, zerolog.Nop())

	page, err := uc.BrowseJobs(context.Background(), BoardParams{Filter: job.Filter{JobType: "full-time"}})
	require.NoError(t, err)
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []int{1}, page.PageNumbers)
	assert.False(t, page.HasNext)
}

// writeAfterSnapshot lets a create land between List and the cache write.
type writeAfterSnapshot struct {
	*memory.JobStore
	once bool
}

func (w *writeAfterSnapshot) List(ctx context.Context) ([]job.Job, error) {
	snap, err := w.JobStore.List(ctx)
	if err == nil && !w.once {
		w.once = true
		_, err = w.JobStore.Create(ctx, job.Draft{Title: "Late Arrival", JobType: job.TypeFullTime})
	}
	return snap, err
}

func TestListJobs_CacheNeverServesOlderSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &writeAfterSnapshot{JobStore: newSeededStore(t)}
	uc := NewJobListUsecase(repo, newMapCache(), JobListConfig{PageSize: 12, MaxLimit: 100}, zerolog.Nop())

	first, err := uc.ListJobs(ctx, JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, 10, first.Total)

	second, err := uc.ListJobs(ctx, JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, 11, second.Total)
	assert.Equal(t, "Late Arrival", second.Jobs[0].Title)

	third, err := uc.ListJobs(ctx, JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, 11, third.Total)
}
