package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware tags each request with an X-Request-ID, reusing the caller's
// when present, and logs one line after the handler chain returns.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error middleware sits inside this one; when it is absent the
			// status comes from the error itself.
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		userID := ""
		if id, ok := UserID(c); ok {
			userID = id.String()
		}

		m.logger.Printf(
			"http=access rid=%s ip=%s method=%s path=%s status=%d latency=%s user_id=%s req_bytes=%d resp_bytes=%d ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), status, time.Since(start), userID,
			c.Request().Header.ContentLength(), len(c.Response().Body()), c.Get("User-Agent"),
		)

		return err
	}
}
