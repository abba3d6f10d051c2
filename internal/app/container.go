package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/domain/job"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/infrastructure/persistence/memory"
	"jobboard/internal/seeder"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"

	"github.com/rs/zerolog"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config  config.Config
	Logger  zerolog.Logger
	Store   *memory.JobStore
	Cache   *cache.Redis
	Hub     *ws.Hub
	Jobs    *usecase.Jobs
	JobList *usecase.JobList

	unsubscribe []func()
}

func NewContainer(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Container, error) {
	store := memory.NewJobStore(memory.WithLogger(logger.With().Str("component", "job_store").Logger()))
	if err := seeder.FromConfig(cfg.Jobs, logger).Run(ctx, store); err != nil {
		return nil, fmt.Errorf("seed job store: %w", err)
	}

	rc := cache.NewRedis(ctx, cfg.Redis, logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Cache:  rc,
		Hub:    ws.NewHub(logger),
		Jobs:   usecase.NewJobUsecase(store, logger),
	}

	var searchCache usecase.SearchCache
	if rc.Available() {
		searchCache = rc
	}
	c.JobList = usecase.NewJobListUsecase(store, searchCache, usecase.JobListConfig{
		PageSize: cfg.Jobs.PageSize,
		MaxLimit: cfg.Jobs.MaxLimit,
	}, logger)

	c.unsubscribe = append(c.unsubscribe,
		store.Subscribe(c.invalidateSearches),
		store.Subscribe(c.Hub.NotifyJob),
	)
	return c, nil
}

func (c *Container) invalidateSearches(evt job.Event) {
	if !c.Cache.Available() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Cache.InvalidateJobSearches(ctx); err != nil {
		c.Logger.Warn().Err(err).Str("event", string(evt.Kind)).Msg("invalidate job searches")
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil

	var errs []error
	if err := c.Cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close cache: %w", err))
	}
	return errors.Join(errs...)
}
