package match

import (
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/matching"
)

// Result is one persisted scoring outcome for a (candidate, project)
// pair. Each matching run produces fresh instances; retention of older
// runs is the storage layer's concern.
type Result struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	ProjectID   uuid.UUID

	RawScore      float64
	FinalScore    float64
	FairnessBonus float64

	TechnicalScore     float64
	CommunicationScore float64
	LeadershipScore    float64
	ExperienceScore    float64

	SkillGaps       []matching.SkillGap
	Explanations    []matching.Explanation
	BiasMitigations []string

	Rank             int
	AlgorithmVersion string
	CalculatedAt     time.Time
}
