package handler

import (
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/delivery/http/dto"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/pkg/response"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc        usecase.SkillUsecase
	validator *validator.Validate
}

func NewSkillHandler(uc usecase.SkillUsecase, v *validator.Validate) *SkillHandler {
	if v == nil {
		v = dto.NewValidator()
	}
	return &SkillHandler{uc: uc, validator: v}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	r.Get("", h.HandleListSkills)
	r.Post("/extract", h.HandleExtract)
	r.Post("/match", h.HandleMatch)
}

func (h *SkillHandler) HandleListSkills(c fiber.Ctx) error {
	defs, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return err
	}
	return response.OK(c, dto.NewDictionaryResponse(defs))
}

func (h *SkillHandler) HandleExtract(c fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validator, req); err != nil {
		return err
	}

	skills, err := h.uc.Extract(c.Context(), req.Text)
	if err != nil {
		return err
	}
	return response.OK(c, dto.ExtractResponse{Skills: skills})
}

func (h *SkillHandler) HandleMatch(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validator, req); err != nil {
		return err
	}

	res, err := h.uc.Match(c.Context(), usecase.MatchInput{
		CandidateText:   req.CandidateText,
		CandidateSkills: req.CandidateSkills,
		RequiredSkills:  req.RequiredSkills,
	})
	if err != nil {
		return err
	}
	return response.OK(c, res)
}
