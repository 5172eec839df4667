package dto

import (
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/project"
)

type RequirementRequest struct {
	SkillID       uuid.UUID `json:"skill_id"`
	RequiredLevel *int      `json:"required_level"`
	Weight        *float64  `json:"weight"`
}

type ProjectRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"project_type"`
	Location    string     `json:"location"`
	IsRemote    bool       `json:"is_remote"`
	Deadline    *time.Time `json:"deadline"`

	Weights  matching.Weights         `json:"weights_config"`
	Fairness *matching.FairnessConfig `json:"fairness_config"`

	RequiredSkills []RequirementRequest `json:"required_skills"`
}

type RequirementResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	RequiredLevel *int      `json:"required_level"`
	Weight        *float64  `json:"weight"`
}

type ProjectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"project_type"`
	Location    string     `json:"location,omitempty"`
	IsRemote    bool       `json:"is_remote"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	Weights  matching.Weights        `json:"weights_config"`
	Fairness matching.FairnessConfig `json:"fairness_config"`

	RequiredSkills []RequirementResponse `json:"required_skills"`
}

func FromProject(p project.Project) ProjectResponse {
	out := ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Type:           string(p.Type),
		Location:       p.Location,
		IsRemote:       p.IsRemote,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		Deadline:       p.Deadline,
		Weights:        p.Weights,
		Fairness:       p.Fairness,
		RequiredSkills: make([]RequirementResponse, 0, len(p.Requirements)),
	}
	for _, r := range p.Requirements {
		out.RequiredSkills = append(out.RequiredSkills, RequirementResponse{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			RequiredLevel: r.RequiredLevel,
			Weight:        r.Weight,
		})
	}
	return out
}

func FromProjects(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProject(p))
	}
	return out
}
