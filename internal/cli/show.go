package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/domain/job"
	"jobboard/internal/usecase"
)

type ShowCmd struct {
	ID string `arg:"" help:"Job id."`
}

func (s *ShowCmd) Run(ctx *Context) error {
	bg := context.Background()
	store, err := ctx.openStore(bg)
	if err != nil {
		return err
	}

	j, err := usecase.NewJobUsecase(store, ctx.Logger).GetJob(bg, s.ID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return fmt.Errorf("job %q not found", s.ID)
		}
		return err
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewJobResponse(j))
	}
	writeJobDetail(ctx.UI, j)
	return nil
}
