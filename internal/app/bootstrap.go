package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/handler"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/routes"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/robfig/cron/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Scheduler *cron.Cron
}

// New builds the HTTP app around an already registered route set.
func New(cfg config.Config, registry *routes.Registry, logger *log.Logger) *fiber.App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	if registry != nil {
		registry.Register(f)
	}
	return f
}

// Bootstrap wires the container, HTTP app, websocket hub and scheduler. The
// hub and scheduler run until ctx is done; the returned func releases
// storage.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run(ctx)

	a := &App{
		Fiber:     New(cfg, NewRegistry(c), logger),
		Container: c,
	}

	if cfg.Scheduler.Enabled {
		s, err := NewScheduler(ctx, cfg.Scheduler, c.Refresh, logger)
		if err != nil {
			_ = c.Close()
			return nil, nil, err
		}
		s.Start()
		a.Scheduler = s
	}

	cleanup := func() error {
		if a.Scheduler != nil {
			<-a.Scheduler.Stop().Done()
		}
		return c.Close()
	}
	return a, cleanup, nil
}

func NewRegistry(c *Container) *routes.Registry {
	v := dto.NewValidator()

	var cachePinger handler.Pinger
	if c.Cache != nil && c.Cache.Available() {
		cachePinger = c.Cache
	}

	return routes.NewRegistry(routes.Handlers{
		Health:       handler.NewHealthHandler(c.DB, cachePinger),
		Skills:       handler.NewSkillHandler(c.SkillUsecase, v),
		Jobs:         handler.NewJobsHandler(c.JobMatchUsecase, v),
		Applications: handler.NewApplicationHandler(c.ApplicationUsecase, c.AnalyticsUsecase, v),
		Resume:       handler.NewResumeHandler(c.ResumeUsecase, v),
		WS:           ws.NewHandler(c.Hub, c.Logger, c.Config.App.AllowedOrigins...),
	}, middleware.NewAuthMiddleware(c.JWT))
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger, handler.ErrorRules...).Middleware())
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
