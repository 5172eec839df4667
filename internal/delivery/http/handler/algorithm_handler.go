package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/project"
	"skillmatch/internal/pkg/response"
)

type AlgorithmHandler struct{}

func NewAlgorithmHandler() *AlgorithmHandler {
	return &AlgorithmHandler{}
}

func (h *AlgorithmHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/algorithm")
	grp.Get("/config", h.Config)
	grp.Post("/weights/default", h.DefaultWeights)
}

type weightSchemaEntry struct {
	Type    string     `json:"type"`
	Range   [2]float64 `json:"range"`
	Default float64    `json:"default"`
}

type algorithmConfig struct {
	Version             string                       `json:"version"`
	WeightsSchema       map[string]weightSchemaEntry `json:"weights_schema"`
	FairnessConstraints []string                     `json:"fairness_constraints"`
	ExplanationDepth    string                       `json:"explanation_depth"`
}

func (h *AlgorithmHandler) Config(c fiber.Ctx) error {
	cfg := algorithmConfig{
		Version: matching.Version,
		WeightsSchema: map[string]weightSchemaEntry{
			matching.WeightTechnical:     {Type: "float", Range: [2]float64{0, 1}, Default: 0.6},
			matching.WeightCommunication: {Type: "float", Range: [2]float64{0, 1}, Default: 0.2},
			matching.WeightLeadership:    {Type: "float", Range: [2]float64{0, 1}, Default: 0.1},
			matching.WeightExperience:    {Type: "float", Range: [2]float64{0, 1}, Default: 0.1},
		},
		FairnessConstraints: []string{
			"demographic_parity",
			"equal_opportunity",
			"socioeconomic_boost",
			"gender_parity",
		},
		ExplanationDepth: "comprehensive",
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cfg)
}

// defaultWeightsByType are the recommended starting weights per project
// type; unknown types fall back to the full-time profile.
var defaultWeightsByType = map[project.Type]matching.Weights{
	project.TypeInternship: {
		matching.WeightTechnical:     0.5,
		matching.WeightCommunication: 0.25,
		matching.WeightLeadership:    0.15,
		matching.WeightExperience:    0.1,
	},
	project.TypeFullTime: {
		matching.WeightTechnical:     0.6,
		matching.WeightCommunication: 0.2,
		matching.WeightLeadership:    0.15,
		matching.WeightExperience:    0.05,
	},
	project.TypeResearch: {
		matching.WeightTechnical:     0.7,
		matching.WeightCommunication: 0.15,
		matching.WeightLeadership:    0.1,
		matching.WeightExperience:    0.05,
	},
	project.TypeContract: {
		matching.WeightTechnical:     0.65,
		matching.WeightCommunication: 0.2,
		matching.WeightLeadership:    0.1,
		matching.WeightExperience:    0.05,
	},
}

func (h *AlgorithmHandler) DefaultWeights(c fiber.Ctx) error {
	projectType := project.Type(c.Query("project_type"))

	weights, ok := defaultWeightsByType[projectType]
	if !ok {
		weights = defaultWeightsByType[project.TypeFullTime]
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, weights)
}
