package candidate

import (
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/matching"
)

// Candidate is the stored profile. Demographic fields are optional (nil =
// not disclosed) and feed only the fairness rules and cohort analytics.
type Candidate struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	FullName       string
	Phone          string

	Gender              *matching.Gender
	Ethnicity           *matching.Ethnicity
	SocioeconomicStatus *matching.SocioeconomicStatus

	YearsExperience int
	EducationLevel  string
	EducationField  string

	IsActive      bool
	IsBlindReview bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Proficiencies []Proficiency
}

// Proficiency is one (candidate, skill) record, unique per pair.
type Proficiency struct {
	ID               uuid.UUID
	CandidateID      uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	YearsExperience  float64
	Verified         bool
}

// ToEngine resolves the stored profile into the engine's pure view.
func (c Candidate) ToEngine() matching.Candidate {
	out := matching.Candidate{
		ID:              c.ID,
		YearsExperience: c.YearsExperience,
		Proficiencies:   make([]matching.Proficiency, 0, len(c.Proficiencies)),
	}
	if c.Gender != nil {
		out.Gender = *c.Gender
	}
	if c.Ethnicity != nil {
		out.Ethnicity = *c.Ethnicity
	}
	if c.SocioeconomicStatus != nil {
		out.SocioeconomicStatus = *c.SocioeconomicStatus
	}
	for _, p := range c.Proficiencies {
		out.Proficiencies = append(out.Proficiencies, matching.Proficiency{
			SkillID:   p.SkillID,
			SkillName: p.SkillName,
			Level:     p.ProficiencyLevel,
			Years:     p.YearsExperience,
			Verified:  p.Verified,
		})
	}
	return out
}
