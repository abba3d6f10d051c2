package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/job"

	"github.com/rs/zerolog"
)

type JobInput struct {
	Title          string
	Company        string
	Location       string
	JobType        string
	Description    string
	Requirements   []string
	Salary         string
	ApplicationURL string
}

// JobPatch changes only the fields that are non-nil.
type JobPatch struct {
	Title          *string
	Company        *string
	Location       *string
	JobType        *string
	Description    *string
	Requirements   *[]string
	Salary         *string
	ApplicationURL *string
}

func (p JobPatch) IsEmpty() bool {
	return p.Title == nil && p.Company == nil && p.Location == nil && p.JobType == nil &&
		p.Description == nil && p.Requirements == nil && p.Salary == nil && p.ApplicationURL == nil
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in JobInput) (job.Job, error)
	GetJob(ctx context.Context, id string) (job.Job, error)
	ReplaceJob(ctx context.Context, id string, in JobInput) (job.Job, error)
	PatchJob(ctx context.Context, id string, p JobPatch) (job.Job, error)
	DeleteJob(ctx context.Context, id string) (job.Job, error)
}

type Jobs struct {
	jobs   job.Repository
	logger zerolog.Logger
}

func NewJobUsecase(jobs job.Repository, logger zerolog.Logger) *Jobs {
	return &Jobs{jobs: jobs, logger: logger.With().Str("component", "jobs").Logger()}
}

func (u *Jobs) CreateJob(ctx context.Context, in JobInput) (job.Job, error) {
	d, err := in.Draft()
	if err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.Create(ctx, d)
	if err != nil {
		return job.Job{}, u.internal(err, "create job")
	}
	u.logger.Info().Str("job_id", created.ID).Str("title", created.Title).Msg("job created")
	return created, nil
}

func (u *Jobs) GetJob(ctx context.Context, id string) (job.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return job.Job{}, job.ErrNotFound
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, u.internal(err, "get job")
	}
	return j, nil
}

func (u *Jobs) ReplaceJob(ctx context.Context, id string, in JobInput) (job.Job, error) {
	d := in.draft()
	return u.update(ctx, id, func(job.Job) (job.Draft, error) {
		return d, validateDraft(d)
	})
}

func (u *Jobs) PatchJob(ctx context.Context, id string, p JobPatch) (job.Job, error) {
	return u.update(ctx, id, func(current job.Job) (job.Draft, error) {
		d := p.apply(current.Draft())
		return d, validateDraft(d)
	})
}

func (u *Jobs) DeleteJob(ctx context.Context, id string) (job.Job, error) {
	removed, err := u.jobs.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		return job.Job{}, u.internal(err, "delete job")
	}
	u.logger.Info().Str("job_id", removed.ID).Msg("job deleted")
	return removed, nil
}

func (u *Jobs) update(ctx context.Context, id string, next func(job.Job) (job.Draft, error)) (job.Job, error) {
	updated, err := u.jobs.Update(ctx, strings.TrimSpace(id), func(current job.Job) (job.Job, error) {
		d, err := next(current)
		if err != nil {
			return job.Job{}, err
		}
		return d.Job(current.ID, current.PostedDate), nil
	})
	if err != nil {
		if errors.Is(err, job.ErrNotFound) || errors.Is(err, ErrInvalidInput) {
			return job.Job{}, err
		}
		return job.Job{}, u.internal(err, "update job")
	}
	u.logger.Info().Str("job_id", updated.ID).Msg("job updated")
	return updated, nil
}

func (u *Jobs) internal(err error, op string) error {
	u.logger.Error().Err(err).Str("op", op).Msg("job store failure")
	return ErrInternal
}

// Draft trims and validates in. Validation failures are *ValidationError.
func (in JobInput) Draft() (job.Draft, error) {
	d := in.draft()
	if err := validateDraft(d); err != nil {
		return job.Draft{}, err
	}
	return d, nil
}

func (in JobInput) draft() job.Draft {
	return job.Draft{
		Title:          strings.TrimSpace(in.Title),
		Company:        strings.TrimSpace(in.Company),
		Location:       strings.TrimSpace(in.Location),
		JobType:        job.Type(strings.TrimSpace(in.JobType)),
		Description:    strings.TrimSpace(in.Description),
		Requirements:   normalizeRequirements(in.Requirements),
		Salary:         strings.TrimSpace(in.Salary),
		ApplicationURL: strings.TrimSpace(in.ApplicationURL),
	}
}

func (p JobPatch) apply(d job.Draft) job.Draft {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&d.Title, p.Title)
	set(&d.Company, p.Company)
	set(&d.Location, p.Location)
	set(&d.Description, p.Description)
	set(&d.Salary, p.Salary)
	set(&d.ApplicationURL, p.ApplicationURL)
	if p.JobType != nil {
		d.JobType = job.Type(strings.TrimSpace(*p.JobType))
	}
	if p.Requirements != nil {
		d.Requirements = normalizeRequirements(*p.Requirements)
	}
	return d
}
