package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/project"
	"skillmatch/internal/domain/skill"
)

func projectSkillFixtures() (*fakeSkillRepo, uuid.UUID) {
	skillID := uuid.New()
	return &fakeSkillRepo{skills: map[uuid.UUID]skill.Skill{
		skillID: {ID: skillID, Name: "Python", Category: skill.CategoryTechnical},
	}}, skillID
}

func TestCreateProject_Success(t *testing.T) {
	skills, skillID := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	created, err := uc.CreateProject(context.Background(), ProjectInput{
		Title: "AI Research Intern",
		Type:  project.TypeInternship,
		Weights: matching.Weights{
			matching.WeightTechnical:     0.6,
			matching.WeightCommunication: 0.2,
			matching.WeightLeadership:    0.1,
			matching.WeightExperience:    0.1,
		},
		Requirements: []RequirementInput{
			{SkillID: skillID, RequiredLevel: intPtr(90), Weight: floatPtr(1.5)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, project.StatusActive, created.Status)
	require.Len(t, created.Requirements, 1)
	assert.Equal(t, "Python", created.Requirements[0].SkillName)
	assert.Equal(t, matching.DefaultFairnessConfig(), created.Fairness)
}

func TestCreateProject_InvalidType(t *testing.T) {
	skills, _ := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	_, err := uc.CreateProject(context.Background(), ProjectInput{
		Title: "Something",
		Type:  project.Type("gig"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateProject_UnknownWeightKey(t *testing.T) {
	skills, _ := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	_, err := uc.CreateProject(context.Background(), ProjectInput{
		Title:   "Something",
		Type:    project.TypeFullTime,
		Weights: matching.Weights{"charisma": 0.4},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateProject_RequirementLevelOutOfRange(t *testing.T) {
	skills, skillID := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	_, err := uc.CreateProject(context.Background(), ProjectInput{
		Title: "Something",
		Type:  project.TypeContract,
		Requirements: []RequirementInput{
			{SkillID: skillID, RequiredLevel: intPtr(120)},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateProject_RequirementWeightOutOfRange(t *testing.T) {
	skills, skillID := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	for _, weight := range []float64{-0.5, 5.0} {
		_, err := uc.CreateProject(context.Background(), ProjectInput{
			Title: "Something",
			Type:  project.TypeContract,
			Requirements: []RequirementInput{
				{SkillID: skillID, RequiredLevel: intPtr(80), Weight: floatPtr(weight)},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCreateProject_DuplicateRequirement(t *testing.T) {
	skills, skillID := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	_, err := uc.CreateProject(context.Background(), ProjectInput{
		Title: "Something",
		Type:  project.TypeResearch,
		Requirements: []RequirementInput{
			{SkillID: skillID, RequiredLevel: intPtr(80)},
			{SkillID: skillID, RequiredLevel: intPtr(60)},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateProject_UnknownSkill(t *testing.T) {
	skills, _ := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	_, err := uc.CreateProject(context.Background(), ProjectInput{
		Title: "Something",
		Type:  project.TypeResearch,
		Requirements: []RequirementInput{
			{SkillID: uuid.New(), RequiredLevel: intPtr(80)},
		},
	})
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestUpdateProject_KeepsStatusAndCreatedAt(t *testing.T) {
	skills, skillID := projectSkillFixtures()
	repo := &fakeProjectRepo{}
	uc := NewProjectUsecase(repo, skills)

	created, err := uc.CreateProject(context.Background(), ProjectInput{
		Title: "Original",
		Type:  project.TypeResearch,
		Requirements: []RequirementInput{
			{SkillID: skillID, RequiredLevel: intPtr(80)},
		},
	})
	require.NoError(t, err)

	updated, err := uc.UpdateProject(context.Background(), created.ID, ProjectInput{
		Title: "Renamed",
		Type:  project.TypeFullTime,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Empty(t, updated.Requirements)
}

func TestDeleteProject_NotFound(t *testing.T) {
	skills, _ := projectSkillFixtures()
	uc := NewProjectUsecase(&fakeProjectRepo{}, skills)

	err := uc.DeleteProject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
