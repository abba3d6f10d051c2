package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger zerolog.Logger
}

func NewAccessLogMiddleware(logger zerolog.Logger) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger.With().Str("component", "http_access").Logger()}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(HeaderRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		evt := m.logger.Info()
		switch {
		case status >= 500:
			evt = m.logger.Error()
		case status >= 400:
			evt = m.logger.Warn()
		}
		evt.
			Str("rid", rid).
			Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("resp_bytes", len(c.Response().Body())).
			Str("ua", c.Get(fiber.HeaderUserAgent)).
			Msg("http access")

		return err
	}
}

func requestID(c fiber.Ctx) string {
	if v, ok := c.Locals(HeaderRequestID).(string); ok {
		return v
	}
	return c.Get(HeaderRequestID)
}
