package handler

import (
	"strconv"
	"strings"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// ErrorRules maps usecase sentinels to HTTP responses. Handlers return
// usecase errors as-is and the error middleware applies these.
var ErrorRules = []middleware.ErrorRule{
	{Target: usecase.ErrInvalidInput, Status: fiber.StatusBadRequest, Message: "Bad request"},
	{Target: usecase.ErrUnauthorized, Status: fiber.StatusUnauthorized, Message: "Unauthorized"},
	{Target: usecase.ErrJobNotFound, Status: fiber.StatusNotFound, Message: "Job not found"},
	{Target: usecase.ErrApplicationNotFound, Status: fiber.StatusNotFound, Message: "Application not found"},
	{Target: usecase.ErrAlreadyApplied, Status: fiber.StatusConflict, Message: "Already applied to this job"},
	{Target: usecase.ErrUserNotFound, Status: fiber.StatusNotFound, Message: "User not found"},
}

// validateRequest runs struct validation and reports failing fields in the
// error envelope's data.
func validateRequest(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", dto.FieldErrors(err), err)
	}
	return nil
}

func bindBody(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	return nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameter: "+key, nil, err)
	}
	return v, nil
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
