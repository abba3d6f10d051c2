package handler

import (
	"errors"
	"strconv"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	msgJobNotFound    = "Job not found"
	msgInvalidBody    = "Invalid request body"
	msgNothingToPatch = "No fields to update"
)

type JobsHandler struct {
	jobs usecase.JobUsecase
	list usecase.JobListUsecase
}

func NewJobsHandler(jobs usecase.JobUsecase, list usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{jobs: jobs, list: list}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Get("/", h.HandleListJobs)
	grp.Post("/", h.HandleCreateJob)
	grp.Get("/:id", h.HandleGetJob)
	grp.Put("/:id", h.HandleReplaceJob)
	grp.Patch("/:id", h.HandlePatchJob)
	grp.Delete("/:id", h.HandleDeleteJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	res, err := h.list.ListJobs(c.Context(), usecase.JobListParams{
		Search:   c.Query("search"),
		JobType:  c.Query("jobType"),
		Location: c.Query("location"),
		Company:  c.Query("company"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(res))
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	j, err := h.jobs.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidBody, nil, err)
	}

	created, err := h.jobs.CreateJob(c.Context(), req.Input())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Created(c, "Job created successfully", dto.NewJobResponse(created))
}

func (h *JobsHandler) HandleReplaceJob(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidBody, nil, err)
	}

	updated, err := h.jobs.ReplaceJob(c.Context(), c.Params("id"), req.Input())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated successfully", dto.NewJobResponse(updated))
}

func (h *JobsHandler) HandlePatchJob(c fiber.Ctx) error {
	var req dto.JobPatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgInvalidBody, nil, err)
	}
	patch := req.Patch()
	if patch.IsEmpty() {
		return middleware.NewAppError(fiber.StatusBadRequest, msgNothingToPatch, nil, nil)
	}

	updated, err := h.jobs.PatchJob(c.Context(), c.Params("id"), patch)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated successfully", dto.NewJobResponse(updated))
}

func (h *JobsHandler) HandleDeleteJob(c fiber.Ctx) error {
	removed, err := h.jobs.DeleteJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	const msg = "Job deleted successfully"
	return response.Success(c, fiber.StatusOK, msg, dto.DeleteJobResponse{Message: msg, Job: dto.NewJobResponse(removed)})
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(), dto.ValidationErrorData{
			MissingFields: verr.MissingFields,
			InvalidFields: verr.InvalidFields,
		}, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgJobNotFound, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
