package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/domain/project"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context(), c.Query("status"))
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProjects(items))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	p, err := h.uc.GetProject(c.Context(), id)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProject(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	in, ok := h.bindProjectInput(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateProject(c.Context(), in)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Project created successfully", dto.FromProject(created))
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	in, ok := h.bindProjectInput(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateProject(c.Context(), id, in)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Project updated successfully", dto.FromProject(updated))
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Project deleted", nil)
}

func (h *ProjectHandler) bindProjectInput(c fiber.Ctx) (usecase.ProjectInput, bool) {
	var req dto.ProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.ProjectInput{}, false
	}

	reqs := make([]usecase.RequirementInput, 0, len(req.RequiredSkills))
	for _, r := range req.RequiredSkills {
		reqs = append(reqs, usecase.RequirementInput{
			SkillID:       r.SkillID,
			RequiredLevel: r.RequiredLevel,
			Weight:        r.Weight,
		})
	}

	return usecase.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         project.Type(req.Type),
		Location:     req.Location,
		IsRemote:     req.IsRemote,
		Deadline:     req.Deadline,
		Weights:      req.Weights,
		Fairness:     req.Fairness,
		Requirements: reqs,
	}, true
}
