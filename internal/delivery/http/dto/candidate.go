package dto

import (
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/candidate"
)

type RegisterCandidateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`

	Gender              *string `json:"gender"`
	Ethnicity           *string `json:"ethnicity"`
	SocioeconomicStatus *string `json:"socioeconomic_status"`

	YearsExperience int    `json:"years_experience"`
	EducationLevel  string `json:"education_level"`
	EducationField  string `json:"education_field"`
}

type UpdateCandidateRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`

	Gender              *string `json:"gender"`
	Ethnicity           *string `json:"ethnicity"`
	SocioeconomicStatus *string `json:"socioeconomic_status"`

	YearsExperience int    `json:"years_experience"`
	EducationLevel  string `json:"education_level"`
	EducationField  string `json:"education_field"`
	IsBlindReview   bool   `json:"is_blind_review"`
}

type ProficiencyRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel int       `json:"proficiency_level"`
	YearsExperience  float64   `json:"years_experience"`
	Verified         bool      `json:"verified"`
}

type ProficiencyResponse struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"`
	YearsExperience  float64   `json:"years_experience"`
	Verified         bool      `json:"verified"`
}

type CandidateResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`

	Gender              *string `json:"gender,omitempty"`
	Ethnicity           *string `json:"ethnicity,omitempty"`
	SocioeconomicStatus *string `json:"socioeconomic_status,omitempty"`

	YearsExperience int    `json:"years_experience"`
	EducationLevel  string `json:"education_level,omitempty"`
	EducationField  string `json:"education_field,omitempty"`

	IsActive      bool      `json:"is_active"`
	IsBlindReview bool      `json:"is_blind_review"`
	CreatedAt     time.Time `json:"created_at"`

	Skills []ProficiencyResponse `json:"skills"`
}

// FromCandidate maps the stored profile to the wire shape. Profiles that
// opted into blind review keep their demographic fields private.
func FromCandidate(c candidate.Candidate) CandidateResponse {
	out := CandidateResponse{
		ID:              c.ID,
		Email:           c.Email,
		FullName:        c.FullName,
		Phone:           c.Phone,
		YearsExperience: c.YearsExperience,
		EducationLevel:  c.EducationLevel,
		EducationField:  c.EducationField,
		IsActive:        c.IsActive,
		IsBlindReview:   c.IsBlindReview,
		CreatedAt:       c.CreatedAt,
		Skills:          make([]ProficiencyResponse, 0, len(c.Proficiencies)),
	}

	if !c.IsBlindReview {
		out.Gender = (*string)(c.Gender)
		out.Ethnicity = (*string)(c.Ethnicity)
		out.SocioeconomicStatus = (*string)(c.SocioeconomicStatus)
	}

	for _, p := range c.Proficiencies {
		out.Skills = append(out.Skills, ProficiencyResponse{
			SkillID:          p.SkillID,
			SkillName:        p.SkillName,
			ProficiencyLevel: p.ProficiencyLevel,
			YearsExperience:  p.YearsExperience,
			Verified:         p.Verified,
		})
	}
	return out
}

func FromCandidates(items []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCandidate(c))
	}
	return out
}
