package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"
)

type MatchingHandler struct {
	uc       usecase.MatchingUsecase
	projects usecase.ProjectUsecase
}

func NewMatchingHandler(uc usecase.MatchingUsecase, projects usecase.ProjectUsecase) *MatchingHandler {
	return &MatchingHandler{uc: uc, projects: projects}
}

func (h *MatchingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/matching")
	grp.Post("/run", h.Run)
	grp.Get("/results/:project_id", h.Results)
	grp.Get("/explanation/:match_id", h.Explanation)
	grp.Get("/candidate/:candidate_id/projects", h.CandidateProjects)

	r.Get("/analytics/fairness/:project_id", h.FairnessAnalytics)
}

func (h *MatchingHandler) Run(c fiber.Ctx) error {
	var req dto.RunMatchingRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if req.ProjectID == uuid.Nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	out, err := h.uc.RunMatching(c.Context(), usecase.RunMatchingInput{
		ProjectID:        req.ProjectID,
		CandidateIDs:     req.CandidateIDs,
		WeightOverride:   req.Weights,
		FairnessOverride: req.Fairness,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Matching completed", dto.FromRunOutput(out))
}

func (h *MatchingHandler) Results(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
	}

	items, err := h.uc.ListProjectMatches(c.Context(), projectID)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchResults(items))
}

func (h *MatchingHandler) Explanation(c fiber.Ctx) error {
	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	detail, err := h.uc.GetExplanation(c.Context(), matchID)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, detail)
}

func (h *MatchingHandler) CandidateProjects(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	minScore := 70.0
	if raw := c.Query("min_score"); raw != "" {
		minScore, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
	}

	items, err := h.uc.ListCandidateMatches(c.Context(), candidateID, minScore)
	if err != nil {
		return respondUsecaseError(c, err)
	}

	out := make([]dto.CandidateProjectMatchResponse, 0, len(items))
	for _, m := range items {
		p, err := h.projects.GetProject(c.Context(), m.ProjectID)
		if err != nil {
			continue
		}
		out = append(out, dto.CandidateProjectMatchResponse{
			Project:      dto.FromProject(p),
			MatchScore:   m.FinalScore,
			Rank:         m.Rank,
			Explanations: m.Explanations,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchingHandler) FairnessAnalytics(c fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	analytics, err := h.uc.GetFairnessAnalytics(c.Context(), projectID)
	if err != nil {
		return respondUsecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, analytics)
}
