package dto

import (
	"time"

	"github.com/google/uuid"

	"skillmatch/internal/domain/match"
	"skillmatch/internal/domain/matching"
	"skillmatch/internal/usecase"
)

type RunMatchingRequest struct {
	ProjectID    uuid.UUID   `json:"project_id"`
	CandidateIDs []uuid.UUID `json:"candidate_ids"`

	Weights  matching.Weights         `json:"weights_config"`
	Fairness *matching.FairnessConfig `json:"fairness_config"`
}

type MatchResultResponse struct {
	MatchID     uuid.UUID `json:"match_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Rank        int       `json:"rank"`

	RawScore      float64 `json:"raw_score"`
	FinalScore    float64 `json:"final_score"`
	FairnessBonus float64 `json:"fairness_bonus"`

	TechnicalScore     float64 `json:"technical_score"`
	CommunicationScore float64 `json:"communication_score"`
	LeadershipScore    float64 `json:"leadership_score"`
	ExperienceScore    float64 `json:"experience_score"`

	SkillGaps       []matching.SkillGap    `json:"skill_gaps"`
	Explanations    []matching.Explanation `json:"explanations"`
	BiasMitigations []string               `json:"bias_mitigations"`

	AlgorithmVersion string    `json:"algorithm_version"`
	CalculatedAt     time.Time `json:"calculated_at"`
}

type RunMatchingResponse struct {
	ProjectID           uuid.UUID             `json:"project_id"`
	Results             []MatchResultResponse `json:"results"`
	FairnessMetrics     matching.Metrics      `json:"fairness_metrics"`
	CandidatesEvaluated int                   `json:"candidates_evaluated"`
	ProcessingTimeMS    float64               `json:"processing_time_ms"`
	AlgorithmVersion    string                `json:"algorithm_version"`
}

type CandidateProjectMatchResponse struct {
	Project      ProjectResponse        `json:"project"`
	MatchScore   float64                `json:"match_score"`
	Rank         int                    `json:"rank"`
	Explanations []matching.Explanation `json:"explanations"`
}

func FromMatchResult(m match.Result) MatchResultResponse {
	return MatchResultResponse{
		MatchID:            m.ID,
		CandidateID:        m.CandidateID,
		ProjectID:          m.ProjectID,
		Rank:               m.Rank,
		RawScore:           m.RawScore,
		FinalScore:         m.FinalScore,
		FairnessBonus:      m.FairnessBonus,
		TechnicalScore:     m.TechnicalScore,
		CommunicationScore: m.CommunicationScore,
		LeadershipScore:    m.LeadershipScore,
		ExperienceScore:    m.ExperienceScore,
		SkillGaps:          m.SkillGaps,
		Explanations:       m.Explanations,
		BiasMitigations:    m.BiasMitigations,
		AlgorithmVersion:   m.AlgorithmVersion,
		CalculatedAt:       m.CalculatedAt,
	}
}

func FromMatchResults(items []match.Result) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMatchResult(m))
	}
	return out
}

func FromRunOutput(o usecase.RunMatchingOutput) RunMatchingResponse {
	return RunMatchingResponse{
		ProjectID:           o.ProjectID,
		Results:             FromMatchResults(o.Results),
		FairnessMetrics:     o.Metrics,
		CandidatesEvaluated: o.CandidatesEvaluated,
		ProcessingTimeMS:    o.ProcessingTimeMS,
		AlgorithmVersion:    o.AlgorithmVersion,
	}
}
