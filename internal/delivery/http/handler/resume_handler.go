package handler

import (
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/middleware"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/response"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc        usecase.ResumeUsecase
	validator *validator.Validate
}

func NewResumeHandler(uc usecase.ResumeUsecase, v *validator.Validate) *ResumeHandler {
	if v == nil {
		v = dto.NewValidator()
	}
	return &ResumeHandler{uc: uc, validator: v}
}

// RegisterRoutes expects r to run the auth middleware first.
func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	r.Get("", h.HandleGet)
	r.Put("", h.HandleUpdate)
}

func (h *ResumeHandler) HandleGet(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, p)
}

func (h *ResumeHandler) HandleUpdate(c fiber.Ctx) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateResumeRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validator, req); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), userID, req.Text)
	if err != nil {
		return err
	}
	return response.OK(c, p)
}
