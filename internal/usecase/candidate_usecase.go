package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillmatch/internal/domain/candidate"
	"skillmatch/internal/domain/matching"
	"skillmatch/internal/repository"
)

type RegisterCandidateInput struct {
	Email    string
	Password string
	FullName string
	Phone    string

	Gender              *matching.Gender
	Ethnicity           *matching.Ethnicity
	SocioeconomicStatus *matching.SocioeconomicStatus

	YearsExperience int
	EducationLevel  string
	EducationField  string
}

type UpdateCandidateInput struct {
	FullName string
	Phone    string

	Gender              *matching.Gender
	Ethnicity           *matching.Ethnicity
	SocioeconomicStatus *matching.SocioeconomicStatus

	YearsExperience int
	EducationLevel  string
	EducationField  string
	IsBlindReview   bool
}

type ProficiencyInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
	YearsExperience  float64
	Verified         bool
}

type CandidateUsecase interface {
	Register(ctx context.Context, in RegisterCandidateInput) (candidate.Candidate, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
	UpdateCandidate(ctx context.Context, id uuid.UUID, in UpdateCandidateInput) (candidate.Candidate, error)
	DeactivateCandidate(ctx context.Context, id uuid.UUID) error

	SetProficiency(ctx context.Context, candidateID uuid.UUID, in ProficiencyInput) (candidate.Proficiency, error)
	RemoveProficiency(ctx context.Context, candidateID, skillID uuid.UUID) error
}

type CandidateService struct {
	candidates repository.CandidateRepository
	skills     repository.SkillRepository
}

func NewCandidateUsecase(candidates repository.CandidateRepository, skills repository.SkillRepository) *CandidateService {
	return &CandidateService{candidates: candidates, skills: skills}
}

func (u *CandidateService) Register(ctx context.Context, in RegisterCandidateInput) (candidate.Candidate, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)
	if email == "" || !strings.Contains(email, "@") || fullName == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if in.YearsExperience < 0 {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if err := validateDemographics(in.Gender, in.Ethnicity, in.SocioeconomicStatus); err != nil {
		return candidate.Candidate{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return candidate.Candidate{}, ErrInternal
	}

	created, err := u.candidates.Create(ctx, candidate.Candidate{
		Email:               email,
		HashedPassword:      string(hashed),
		FullName:            fullName,
		Phone:               strings.TrimSpace(in.Phone),
		Gender:              in.Gender,
		Ethnicity:           in.Ethnicity,
		SocioeconomicStatus: in.SocioeconomicStatus,
		YearsExperience:     in.YearsExperience,
		EducationLevel:      strings.TrimSpace(in.EducationLevel),
		EducationField:      strings.TrimSpace(in.EducationField),
		IsActive:            true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCandidateEmailInUse) {
			return candidate.Candidate{}, ErrEmailAlreadyUsed
		}
		return candidate.Candidate{}, ErrInternal
	}
	return created, nil
}

func (u *CandidateService) GetCandidate(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return c, nil
}

func (u *CandidateService) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	items, err := u.candidates.ListActive(ctx, nil)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *CandidateService) UpdateCandidate(ctx context.Context, id uuid.UUID, in UpdateCandidateInput) (candidate.Candidate, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" || in.YearsExperience < 0 {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if err := validateDemographics(in.Gender, in.Ethnicity, in.SocioeconomicStatus); err != nil {
		return candidate.Candidate{}, err
	}

	existing, err := u.GetCandidate(ctx, id)
	if err != nil {
		return candidate.Candidate{}, err
	}

	existing.FullName = fullName
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.Gender = in.Gender
	existing.Ethnicity = in.Ethnicity
	existing.SocioeconomicStatus = in.SocioeconomicStatus
	existing.YearsExperience = in.YearsExperience
	existing.EducationLevel = strings.TrimSpace(in.EducationLevel)
	existing.EducationField = strings.TrimSpace(in.EducationField)
	existing.IsBlindReview = in.IsBlindReview

	updated, err := u.candidates.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return updated, nil
}

func (u *CandidateService) DeactivateCandidate(ctx context.Context, id uuid.UUID) error {
	if err := u.candidates.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ErrCandidateNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *CandidateService) SetProficiency(ctx context.Context, candidateID uuid.UUID, in ProficiencyInput) (candidate.Proficiency, error) {
	if in.ProficiencyLevel < 0 || in.ProficiencyLevel > 100 || in.YearsExperience < 0 {
		return candidate.Proficiency{}, ErrInvalidInput
	}

	if _, err := u.GetCandidate(ctx, candidateID); err != nil {
		return candidate.Proficiency{}, err
	}
	if _, err := u.skills.GetByID(ctx, in.SkillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return candidate.Proficiency{}, ErrSkillNotFound
		}
		return candidate.Proficiency{}, ErrInternal
	}

	saved, err := u.candidates.UpsertProficiency(ctx, candidate.Proficiency{
		CandidateID:      candidateID,
		SkillID:          in.SkillID,
		ProficiencyLevel: in.ProficiencyLevel,
		YearsExperience:  in.YearsExperience,
		Verified:         in.Verified,
	})
	if err != nil {
		return candidate.Proficiency{}, ErrInternal
	}
	return saved, nil
}

func (u *CandidateService) RemoveProficiency(ctx context.Context, candidateID, skillID uuid.UUID) error {
	if err := u.candidates.DeleteProficiency(ctx, candidateID, skillID); err != nil {
		if errors.Is(err, repository.ErrProficiencyNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func validateDemographics(g *matching.Gender, e *matching.Ethnicity, s *matching.SocioeconomicStatus) error {
	if g != nil {
		switch *g {
		case matching.GenderMale, matching.GenderFemale, matching.GenderNonBinary, matching.GenderPreferNotToSay:
		default:
			return ErrInvalidInput
		}
	}
	if e != nil {
		switch *e {
		case matching.EthnicityAsian, matching.EthnicityBlack, matching.EthnicityHispanic,
			matching.EthnicityCaucasian, matching.EthnicitySouthAsian, matching.EthnicityEastAsian,
			matching.EthnicityOther:
		default:
			return ErrInvalidInput
		}
	}
	if s != nil {
		switch *s {
		case matching.SESLow, matching.SESMedium, matching.SESHigh:
		default:
			return ErrInvalidInput
		}
	}
	return nil
}
