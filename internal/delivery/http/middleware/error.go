package middleware

import (
	"errors"
	"log"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorRule turns any error matching Target (errors.Is) into a response.
type ErrorRule struct {
	Target  error
	Status  int
	Message string
}

type ErrorMiddleware struct {
	logger *log.Logger
	rules  []ErrorRule
}

func NewErrorMiddleware(logger *log.Logger, rules ...ErrorRule) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger, rules: rules}
}

// Middleware renders handler errors as the response envelope. Server errors
// are logged with their cause and reported without detail.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("http=panic rid=%s method=%s path=%s panic=%v", requestID(c), c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.normalize(err)
		if status >= 500 {
			m.logger.Printf("http=error rid=%s method=%s path=%s status=%d err=%v", requestID(c), c.Method(), c.Path(), status, err)
		}
		return response.Error(c, status, msg, data)
	}
}

// normalize resolves err to a status, message and payload. AppError takes
// precedence over the rules, which take precedence over fiber errors. 5xx
// responses never carry detail.
func (m *ErrorMiddleware) normalize(err error) (int, string, any) {
	status, msg, data := fiber.StatusInternalServerError, "", any(nil)

	var appErr *AppError
	var fiberErr *fiber.Error
	rule := m.match(err)
	switch {
	case errors.As(err, &appErr):
		status, msg, data = appErr.StatusCode, appErr.Message, appErr.Data
	case rule != nil:
		status, msg = rule.Status, rule.Message
	case errors.As(err, &fiberErr):
		status, msg = fiberErr.Code, fiberErr.Message
	}

	if status <= 0 || status >= 500 {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return status, msg, data
}

func (m *ErrorMiddleware) match(err error) *ErrorRule {
	for i := range m.rules {
		if m.rules[i].Target != nil && errors.Is(err, m.rules[i].Target) {
			return &m.rules[i]
		}
	}
	return nil
}

func requestID(c fiber.Ctx) string {
	rid, _ := c.Locals(CtxRequestIDKey).(string)
	return rid
}
