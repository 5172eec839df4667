package project

import (
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/matching"
)

type Type string

const (
	TypeInternship Type = "internship"
	TypeFullTime   Type = "full_time"
	TypeContract   Type = "contract"
	TypeResearch   Type = "research"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
	StatusPaused = "paused"
)

type Project struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        Type
	Location    string
	IsRemote    bool
	Status      string

	Weights  matching.Weights
	Fairness matching.FairnessConfig

	CreatedAt time.Time
	Deadline  *time.Time

	Requirements []Requirement
}

// Requirement is one (project, skill) row; RequiredLevel and Weight stay
// nullable so the engine can apply its documented defaults to rows that
// were stored without them.
type Requirement struct {
	ProjectID     uuid.UUID
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel *int
	Weight        *float64
}

func (p Project) ToEngine() matching.Project {
	out := matching.Project{
		ID:           p.ID,
		Weights:      p.Weights,
		Fairness:     p.Fairness,
		Requirements: make([]matching.Requirement, 0, len(p.Requirements)),
	}
	for _, r := range p.Requirements {
		out.Requirements = append(out.Requirements, matching.Requirement{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			RequiredLevel: r.RequiredLevel,
			Weight:        r.Weight,
		})
	}
	return out
}
