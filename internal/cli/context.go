package cli

import (
	"context"
	"io"

	"jobboard/internal/config"
	"jobboard/internal/infrastructure/persistence/memory"
	"jobboard/internal/seeder"
	"jobboard/internal/ui"

	"github.com/rs/zerolog"
)

type Context struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	Logger     zerolog.Logger
	JSONOutput bool
	Version    string
}

// openStore builds a fresh in-memory store loaded from the configured seeds.
// Every command invocation gets its own store.
func (c *Context) openStore(ctx context.Context) (*memory.JobStore, error) {
	store := memory.NewJobStore(memory.WithLogger(c.Logger))
	if err := seeder.FromConfig(c.Config.Jobs, c.Logger).Run(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}
