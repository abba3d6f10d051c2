package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// BoardHandler serves the paged board view and the filter pickers.
type BoardHandler struct {
	uc usecase.JobListUsecase
}

func NewBoardHandler(uc usecase.JobListUsecase) *BoardHandler {
	return &BoardHandler{uc: uc}
}

func (h *BoardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/board", h.HandleBoard)
	r.Get("/filters", h.HandleFilterOptions)
}

func (h *BoardHandler) HandleBoard(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid page", nil, err)
	}
	size, err := parseQueryIntStrict(c, "pageSize", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pageSize", nil, err)
	}

	p, err := h.uc.BrowseJobs(c.Context(), usecase.BoardParams{
		Filter: job.Filter{
			Search:   c.Query("search"),
			JobType:  c.Query("jobType"),
			Location: c.Query("location"),
			Company:  c.Query("company"),
		},
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewBoardResponse(p))
}

func (h *BoardHandler) HandleFilterOptions(c fiber.Ctx) error {
	opts, err := h.uc.FilterOptions(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFilterOptionsResponse(opts))
}
