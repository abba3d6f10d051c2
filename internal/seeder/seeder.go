package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/config"
	"jobboard/internal/domain/job"

	"github.com/rs/zerolog"
)

// Target accepts postings with preassigned ids and dates.
type Target interface {
	Seed(ctx context.Context, jobs []job.Job) error
}

type Seeder interface {
	Name() string
	Jobs(ctx context.Context) ([]job.Job, error)
}

type Runner struct {
	Seeders []Seeder
	Logger  zerolog.Logger
}

func (r Runner) Run(ctx context.Context, target Target) error {
	if target == nil {
		return fmt.Errorf("nil seed target")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		jobs, err := s.Jobs(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if err := target.Seed(ctx, jobs); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		r.Logger.Info().Str("seeder", s.Name()).Int("jobs", len(jobs)).Msg("seeded jobs")
	}
	return nil
}

// FromConfig picks the seed source for cfg. A seed file replaces the
// built-in postings.
func FromConfig(cfg config.JobsConfig, logger zerolog.Logger) Runner {
	r := Runner{Logger: logger.With().Str("component", "seeder").Logger()}
	switch {
	case cfg.SeedFile != "":
		r.Seeders = []Seeder{FileSeeder{Path: cfg.SeedFile}}
	case cfg.SeedDefaults:
		r.Seeders = []Seeder{JobSeeder{}}
	}
	return r
}
