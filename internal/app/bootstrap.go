package app

import (
	"context"
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and HTTP app and starts the websocket hub.
// The returned cleanup stops the hub and releases the container.
func Bootstrap(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger zerolog.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(
		handler.HealthCheck{Name: "store", Check: func(fc fiber.Ctx) (string, error) {
			n, err := c.Store.Count(fc.Context())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d jobs", n), nil
		}},
		handler.HealthCheck{Name: "cache", Check: func(fc fiber.Ctx) (string, error) {
			if !c.Config.Redis.Enabled {
				return "disabled", nil
			}
			if err := c.Cache.Ping(fc.Context()); err != nil {
				return "", err
			}
			return "ok", nil
		}},
	)

	routes.NewRegistry(health, v1.Handlers{
		Jobs:  handler.NewJobsHandler(c.Jobs, c.JobList),
		Board: handler.NewBoardHandler(c.JobList),
		WS:    ws.NewHandler(c.Hub, c.Logger),
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
