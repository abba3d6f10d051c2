package v1

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups everything mounted under /api/v1. Nil members are skipped.
type Handlers struct {
	Jobs  *handler.JobsHandler
	Board *handler.BoardHandler
	WS    *ws.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r)
	}
	if h.Board != nil {
		h.Board.RegisterRoutes(r)
	}
	if h.WS != nil {
		h.WS.RegisterRoutes(r)
	}
}
