package routes

import (
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/handler"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health       *handler.HealthHandler
	Skills       *handler.SkillHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationHandler
	Resume       *handler.ResumeHandler
	WS           *ws.Handler
}

type Registry struct {
	h    Handlers
	auth *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{h: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

// Skill endpoints are public; anything reading a user's resume or
// applications sits behind the token check.
func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api/v1")

	if r.h.Skills != nil {
		r.h.Skills.RegisterRoutes(v1.Group("/skills"))
	}
	if r.h.Jobs != nil {
		r.h.Jobs.RegisterRoutes(v1.Group("/jobs", r.auth.Middleware()))
	}
	if r.h.Applications != nil {
		r.h.Applications.RegisterRoutes(v1.Group("/applications", r.auth.Middleware()))
	}
	if r.h.Resume != nil {
		r.h.Resume.RegisterRoutes(v1.Group("/resume", r.auth.Middleware()))
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.h.WS != nil {
		r.h.WS.RegisterRoutes(app.Group("/ws", r.auth.Middleware()))
	}
}
