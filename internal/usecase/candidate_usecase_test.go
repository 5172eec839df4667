package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/skill"
	"skillmatch/internal/repository"
)

type fakeSkillRepo struct {
	skills map[uuid.UUID]skill.Skill
}

func (f *fakeSkillRepo) GetAllSkills(context.Context) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0, len(f.skills))
	for _, s := range f.skills {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSkillRepo) GetByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (f *fakeSkillRepo) GetByName(_ context.Context, name string) (skill.Skill, error) {
	for _, s := range f.skills {
		if s.Name == name {
			return s, nil
		}
	}
	return skill.Skill{}, repository.ErrSkillNotFound
}

func (f *fakeSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	if f.skills == nil {
		f.skills = map[uuid.UUID]skill.Skill{}
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.skills[s.ID] = s
	return s, nil
}

func validRegisterInput() RegisterCandidateInput {
	return RegisterCandidateInput{
		Email:           "new@example.com",
		Password:        "long-enough-pass",
		FullName:        "New Candidate",
		YearsExperience: 2,
	}
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeCandidateRepo{}
	uc := NewCandidateUsecase(repo, &fakeSkillRepo{})

	created, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "new@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "long-enough-pass", created.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.HashedPassword), []byte("long-enough-pass")))
}

func TestRegister_NormalizesEmail(t *testing.T) {
	uc := NewCandidateUsecase(&fakeCandidateRepo{}, &fakeSkillRepo{})

	in := validRegisterInput()
	in.Email = "  Mixed.Case@Example.COM "
	created, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "mixed.case@example.com", created.Email)
}

func TestRegister_ShortPassword(t *testing.T) {
	uc := NewCandidateUsecase(&fakeCandidateRepo{}, &fakeSkillRepo{})

	in := validRegisterInput()
	in.Password = "short"
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_InvalidDemographic(t *testing.T) {
	uc := NewCandidateUsecase(&fakeCandidateRepo{}, &fakeSkillRepo{})

	bad := matching.Gender("unknown")
	in := validRegisterInput()
	in.Gender = &bad
	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeCandidateRepo{}
	uc := NewCandidateUsecase(repo, &fakeSkillRepo{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestSetProficiency_LevelOutOfRange(t *testing.T) {
	uc := NewCandidateUsecase(&fakeCandidateRepo{}, &fakeSkillRepo{})

	_, err := uc.SetProficiency(context.Background(), uuid.New(), ProficiencyInput{
		SkillID:          uuid.New(),
		ProficiencyLevel: 150,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetProficiency_UnknownSkill(t *testing.T) {
	repo := &fakeCandidateRepo{}
	uc := NewCandidateUsecase(repo, &fakeSkillRepo{})

	created, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = uc.SetProficiency(context.Background(), created.ID, ProficiencyInput{
		SkillID:          uuid.New(),
		ProficiencyLevel: 80,
	})
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSetProficiency_Success(t *testing.T) {
	repo := &fakeCandidateRepo{}
	skillID := uuid.New()
	skills := &fakeSkillRepo{skills: map[uuid.UUID]skill.Skill{
		skillID: {ID: skillID, Name: "Python", Category: skill.CategoryTechnical},
	}}
	uc := NewCandidateUsecase(repo, skills)

	created, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	saved, err := uc.SetProficiency(context.Background(), created.ID, ProficiencyInput{
		SkillID:          skillID,
		ProficiencyLevel: 85,
		YearsExperience:  2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 85, saved.ProficiencyLevel)
	assert.Equal(t, created.ID, saved.CandidateID)
}
