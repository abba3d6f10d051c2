package handler

import (
	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthCheck struct {
	Name  string
	Check func(c fiber.Ctx) (string, error)
}

type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Handle)
}

// Handle always answers 200 while the process is up; failing checks are
// reported in the body.
func (h *HealthHandler) Handle(c fiber.Ctx) error {
	out := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		state, err := chk.Check(c)
		if err != nil {
			state = "error: " + err.Error()
		}
		out[chk.Name] = state
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
