package handler

import (
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/response"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	apps      usecase.ApplicationUsecase
	analytics usecase.AnalyticsUsecase
	validator *validator.Validate
}

func NewApplicationHandler(apps usecase.ApplicationUsecase, analytics usecase.AnalyticsUsecase, v *validator.Validate) *ApplicationHandler {
	if v == nil {
		v = dto.NewValidator()
	}
	return &ApplicationHandler{apps: apps, analytics: analytics, validator: v}
}

// RegisterRoutes expects r to run the auth middleware first.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	r.Post("", h.HandleApply)
	r.Get("", h.HandleList)
	r.Get("/analytics", h.HandleAnalytics)
	r.Patch("/:id/status", h.HandleUpdateStatus)
}

func (h *ApplicationHandler) HandleApply(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validator, req); err != nil {
		return err
	}

	created, err := h.apps.Apply(c.Context(), userID, usecase.ApplyInput{
		JobID:       req.JobID,
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
	})
	if err != nil {
		return err
	}
	return response.Created(c, dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) HandleList(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	items, err := h.apps.List(c.Context(), userID)
	if err != nil {
		return err
	}
	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, dto.NewApplicationResponse(a))
	}
	return response.OK(c, out)
}

func (h *ApplicationHandler) HandleUpdateStatus(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validator, req); err != nil {
		return err
	}

	updated, err := h.apps.UpdateStatus(c.Context(), userID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return response.OK(c, dto.NewApplicationResponse(updated))
}

func (h *ApplicationHandler) HandleAnalytics(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	data, err := h.analytics.GetAnalytics(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, data)
}
