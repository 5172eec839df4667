package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillmatch/internal/domain/skill"
	"skillmatch/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context, category string) ([]skill.Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	AddSkill(ctx context.Context, name, category, description string) (skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context, category string) ([]skill.Skill, error) {
	category = strings.TrimSpace(category)
	switch category {
	case "", skill.CategoryTechnical, skill.CategorySoft, skill.CategoryDomain:
	default:
		return nil, ErrInvalidInput
	}

	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if category == "" {
		return items, nil
	}

	filtered := make([]skill.Skill, 0, len(items))
	for _, s := range items {
		if s.Category == category {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (u *Skill) GetSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}
	return s, nil
}

func (u *Skill) AddSkill(ctx context.Context, name, category, description string) (skill.Skill, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	switch category {
	case skill.CategoryTechnical, skill.CategorySoft, skill.CategoryDomain:
	default:
		return skill.Skill{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, skill.Skill{
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return skill.Skill{}, ErrInternal
	}
	return created, nil
}
