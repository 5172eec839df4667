package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/project"
	"skillmatch/internal/repository"
)

type RequirementInput struct {
	SkillID       uuid.UUID
	RequiredLevel *int
	Weight        *float64
}

type ProjectInput struct {
	Title       string
	Description string
	Type        project.Type
	Location    string
	IsRemote    bool
	Deadline    *time.Time

	Weights  matching.Weights
	Fairness *matching.FairnessConfig

	Requirements []RequirementInput
}

type ProjectUsecase interface {
	CreateProject(ctx context.Context, in ProjectInput) (project.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (project.Project, error)
	ListProjects(ctx context.Context, status string) ([]project.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (project.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type ProjectService struct {
	projects repository.ProjectRepository
	skills   repository.SkillRepository
}

func NewProjectUsecase(projects repository.ProjectRepository, skills repository.SkillRepository) *ProjectService {
	return &ProjectService{projects: projects, skills: skills}
}

func (u *ProjectService) CreateProject(ctx context.Context, in ProjectInput) (project.Project, error) {
	p, err := u.buildProject(ctx, in)
	if err != nil {
		return project.Project{}, err
	}

	created, err := u.projects.Create(ctx, p)
	if err != nil {
		return project.Project{}, ErrInternal
	}
	return created, nil
}

func (u *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (project.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *ProjectService) ListProjects(ctx context.Context, status string) ([]project.Project, error) {
	status = strings.TrimSpace(status)
	switch status {
	case "", project.StatusActive, project.StatusClosed, project.StatusPaused:
	default:
		return nil, ErrInvalidInput
	}

	items, err := u.projects.List(ctx, status)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (project.Project, error) {
	existing, err := u.GetProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}

	p, err := u.buildProject(ctx, in)
	if err != nil {
		return project.Project{}, err
	}
	p.ID = existing.ID
	p.Status = existing.Status
	p.CreatedAt = existing.CreatedAt

	if _, err := u.projects.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}

	if err := u.projects.ReplaceRequirements(ctx, p.ID, p.Requirements); err != nil {
		return project.Project{}, ErrInternal
	}
	return u.GetProject(ctx, p.ID)
}

func (u *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := u.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *ProjectService) buildProject(ctx context.Context, in ProjectInput) (project.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return project.Project{}, ErrInvalidInput
	}
	switch in.Type {
	case project.TypeInternship, project.TypeFullTime, project.TypeContract, project.TypeResearch:
	default:
		return project.Project{}, ErrInvalidInput
	}
	if err := validateWeights(in.Weights); err != nil {
		return project.Project{}, err
	}

	fairness := matching.DefaultFairnessConfig()
	if in.Fairness != nil {
		if err := validateFairness(*in.Fairness); err != nil {
			return project.Project{}, err
		}
		fairness = *in.Fairness
	}

	reqs := make([]project.Requirement, 0, len(in.Requirements))
	seen := make(map[uuid.UUID]struct{}, len(in.Requirements))
	for _, r := range in.Requirements {
		if _, dup := seen[r.SkillID]; dup {
			return project.Project{}, ErrInvalidInput
		}
		seen[r.SkillID] = struct{}{}

		if r.RequiredLevel != nil && (*r.RequiredLevel < 0 || *r.RequiredLevel > 100) {
			return project.Project{}, ErrInvalidInput
		}
		if r.Weight != nil && (*r.Weight < 0 || *r.Weight > 2) {
			return project.Project{}, ErrInvalidInput
		}

		s, err := u.skills.GetByID(ctx, r.SkillID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return project.Project{}, ErrSkillNotFound
			}
			return project.Project{}, ErrInternal
		}

		reqs = append(reqs, project.Requirement{
			SkillID:       s.ID,
			SkillName:     s.Name,
			RequiredLevel: r.RequiredLevel,
			Weight:        r.Weight,
		})
	}

	return project.Project{
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Type:         in.Type,
		Location:     strings.TrimSpace(in.Location),
		IsRemote:     in.IsRemote,
		Status:       project.StatusActive,
		Weights:      in.Weights,
		Fairness:     fairness,
		Deadline:     in.Deadline,
		Requirements: reqs,
	}, nil
}

func validateWeights(w matching.Weights) error {
	for key, v := range w {
		switch key {
		case matching.WeightTechnical, matching.WeightCommunication,
			matching.WeightLeadership, matching.WeightExperience:
		default:
			return ErrInvalidInput
		}
		if v < 0 || v > 1 {
			return ErrInvalidInput
		}
	}
	return nil
}

func validateFairness(f matching.FairnessConfig) error {
	if f.DemographicParityThreshold < 0 || f.DemographicParityThreshold > 1 {
		return ErrInvalidInput
	}
	if f.EqualOpportunityWeight < 0 || f.EqualOpportunityWeight > 1 {
		return ErrInvalidInput
	}
	return nil
}
