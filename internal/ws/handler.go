package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler upgrades authenticated requests to per-user event streams.
type Handler struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHandler accepts upgrades from allowedOrigins only; none means any origin.
func NewHandler(hub *Hub, logger *log.Logger, allowedOrigins ...string) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.ToLower(strings.TrimRight(o, "/"))] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[strings.ToLower(strings.TrimRight(origin, "/"))]
		return ok
	}
}

// RegisterRoutes expects r to run the auth middleware first.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/applications", h.HandleApplicationsWS)
}

func (h *Handler) HandleApplicationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("ws=upgrade status=error user_id=%s origin=%q err=%v", userID, r.Header.Get("Origin"), err)
			return
		}

		client := NewClient(h.hub, conn, userID.String())
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})(c)
}
