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

type ListCmd struct {
	FilterFlags
	Page     int `short:"p" help:"Page to show." default:"1"`
	PageSize int `help:"Postings per page (default from JOBS_PAGE_SIZE)."`
}

func (l *ListCmd) Run(ctx *Context) error {
	bg := context.Background()
	store, err := ctx.openStore(bg)
	if err != nil {
		return err
	}

	uc := usecase.NewJobListUsecase(store, nil, usecase.JobListConfig{
		PageSize: ctx.Config.Jobs.PageSize,
		MaxLimit: ctx.Config.Jobs.MaxLimit,
	}, ctx.Logger)

	page, err := uc.BrowseJobs(bg, usecase.BoardParams{
		Filter: job.Filter{
			Search:   l.Search,
			JobType:  l.JobType,
			Location: l.Location,
			Company:  l.Company,
		},
		Page:     l.Page,
		PageSize: l.PageSize,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return fmt.Errorf("--page-size must be between 1 and %d", ctx.Config.Jobs.MaxLimit)
		}
		return err
	}

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewBoardResponse(page))
	}

	if page.Total == 0 {
		ctx.UI.Warnf("No jobs match the current filters.")
		return nil
	}
	if err := writeJobTable(ctx.Out, page.Items); err != nil {
		return err
	}
	writePageFooter(ctx.UI, page)
	return nil
}
