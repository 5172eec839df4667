package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/domain/matching"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// RegisterPublicRoutes exposes registration without a token; everything
// else requires auth and is registered separately.
func (h *CandidateHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/candidates", h.Register)
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/candidates")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Deactivate)
	grp.Put("/:id/skills", h.SetProficiency)
	grp.Delete("/:id/skills/:skill_id", h.RemoveProficiency)
}

func (h *CandidateHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Register(c.Context(), usecase.RegisterCandidateInput{
		Email:               req.Email,
		Password:            req.Password,
		FullName:            req.FullName,
		Phone:               req.Phone,
		Gender:              (*matching.Gender)(req.Gender),
		Ethnicity:           (*matching.Ethnicity)(req.Ethnicity),
		SocioeconomicStatus: (*matching.SocioeconomicStatus)(req.SocioeconomicStatus),
		YearsExperience:     req.YearsExperience,
		EducationLevel:      req.EducationLevel,
		EducationField:      req.EducationField,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Candidate created successfully", dto.FromCandidate(created))
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCandidates(c.Context())
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidates(items))
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	cand, err := h.uc.GetCandidate(c.Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(cand))
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.UpdateCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateCandidate(c.Context(), id, usecase.UpdateCandidateInput{
		FullName:            req.FullName,
		Phone:               req.Phone,
		Gender:              (*matching.Gender)(req.Gender),
		Ethnicity:           (*matching.Ethnicity)(req.Ethnicity),
		SocioeconomicStatus: (*matching.SocioeconomicStatus)(req.SocioeconomicStatus),
		YearsExperience:     req.YearsExperience,
		EducationLevel:      req.EducationLevel,
		EducationField:      req.EducationField,
		IsBlindReview:       req.IsBlindReview,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Candidate updated successfully", dto.FromCandidate(updated))
}

func (h *CandidateHandler) Deactivate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeactivateCandidate(c.Context(), id); err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Candidate deactivated", nil)
}

func (h *CandidateHandler) SetProficiency(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req dto.ProficiencyRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	saved, err := h.uc.SetProficiency(c.Context(), id, usecase.ProficiencyInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
		YearsExperience:  req.YearsExperience,
		Verified:         req.Verified,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Proficiency saved", dto.ProficiencyResponse{
		SkillID:          saved.SkillID,
		SkillName:        saved.SkillName,
		ProficiencyLevel: saved.ProficiencyLevel,
		YearsExperience:  saved.YearsExperience,
		Verified:         saved.Verified,
	})
}

func (h *CandidateHandler) RemoveProficiency(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	skillID, err := uuid.Parse(c.Params("skill_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.RemoveProficiency(c.Context(), id, skillID); err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Proficiency removed", nil)
}
