// Package matching implements the explainable candidate/project scoring
// engine: weighted competency scores, deterministic fairness adjustments,
// skill-gap analysis and human-readable explanations. Everything in this
// package is a pure function of already-resolved records; persistence and
// transport live with the callers.
package matching

import "github.com/google/uuid"

// Version tags every produced result for auditing.
const Version = "2.0.0"

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderNonBinary      Gender = "non_binary"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

type Ethnicity string

const (
	EthnicityAsian      Ethnicity = "asian"
	EthnicityBlack      Ethnicity = "black"
	EthnicityHispanic   Ethnicity = "hispanic"
	EthnicityCaucasian  Ethnicity = "caucasian"
	EthnicitySouthAsian Ethnicity = "south_asian"
	EthnicityEastAsian  Ethnicity = "east_asian"
	EthnicityOther      Ethnicity = "other"
)

type SocioeconomicStatus string

const (
	SESLow    SocioeconomicStatus = "low"
	SESMedium SocioeconomicStatus = "medium"
	SESHigh   SocioeconomicStatus = "high"
)

// FairnessConfig gates the adjustment rules. EqualOpportunityWeight and
// BlindScreening are carried for forward compatibility; their current
// effect is none (reserved).
type FairnessConfig struct {
	DemographicParityThreshold float64 `json:"demographic_parity_threshold"`
	EqualOpportunityWeight     float64 `json:"equal_opportunity_weight"`
	SocioeconomicBoost         bool    `json:"socioeconomic_boost"`
	GenderParity               bool    `json:"gender_parity"`
	BlindScreening             bool    `json:"blind_screening"`
}

func DefaultFairnessConfig() FairnessConfig {
	return FairnessConfig{
		DemographicParityThreshold: 0.8,
		EqualOpportunityWeight:     0.75,
		SocioeconomicBoost:         true,
		GenderParity:               true,
		BlindScreening:             false,
	}
}

// Weights maps component names to their share of the raw score. Missing
// keys fall back to the documented defaults, so a partially configured
// project still scores all four components.
type Weights map[string]float64

const (
	WeightTechnical     = "technical"
	WeightCommunication = "communication"
	WeightLeadership    = "leadership"
	WeightExperience    = "experience"
)

func defaultWeightFor(key string) float64 {
	switch key {
	case WeightTechnical:
		return 0.6
	case WeightCommunication:
		return 0.2
	default:
		return 0.1
	}
}

func (w Weights) resolve(key string) float64 {
	if w != nil {
		if v, ok := w[key]; ok {
			return v
		}
	}
	return defaultWeightFor(key)
}

// Proficiency is one resolved (candidate, skill) record.
type Proficiency struct {
	SkillID   uuid.UUID
	SkillName string
	Level     int
	Years     float64
	Verified  bool
}

// Candidate is the engine's view of a candidate: demographics feed only
// the fairness rules and cohort metrics, never the component scorer.
type Candidate struct {
	ID                  uuid.UUID
	Gender              Gender
	Ethnicity           Ethnicity
	SocioeconomicStatus SocioeconomicStatus
	YearsExperience     int
	Proficiencies       []Proficiency
}

// Requirement is one resolved (project, skill) record. Nil RequiredLevel
// or Weight mean the stored row was absent or malformed; the engine
// substitutes the documented defaults (80 and 1.0).
type Requirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel *int
	Weight        *float64
}

type Project struct {
	ID           uuid.UUID
	Weights      Weights
	Fairness     FairnessConfig
	Requirements []Requirement
}

type SkillGap struct {
	Skill    string `json:"skill"`
	Required int    `json:"required"`
	Actual   int    `json:"actual"`
	Gap      int    `json:"gap"`
}

type Explanation struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Detail   string `json:"detail"`
	Impact   string `json:"impact"`
}

const (
	ExplanationStrength = "strength"
	ExplanationNeutral  = "neutral"
	ExplanationWeakness = "weakness"
	ExplanationGap      = "gap"
	ExplanationFairness = "fairness"
)

const (
	ImpactHigh       = "High"
	ImpactMedium     = "Medium"
	ImpactLow        = "Low"
	ImpactAdjustment = "Adjustment"
)

// Result carries every intermediate score alongside the final one so
// callers can audit the full decision path.
type Result struct {
	RawScore           float64
	FinalScore         float64
	FairnessBonus      float64
	TechnicalScore     float64
	CommunicationScore float64
	LeadershipScore    float64
	ExperienceScore    float64
	SkillGaps          []SkillGap
	Explanations       []Explanation
	BiasMitigations    []string
	AlgorithmVersion   string
}

// RankedMatch is one run entry after ranking. Rank is dense and 1-based.
type RankedMatch struct {
	CandidateID uuid.UUID
	Rank        int
	Result
}

// Metrics are descriptive cohort aggregates, not calibrated fairness
// guarantees. Nil fields mean the metric could not be computed (fewer
// than two gender groups, or no candidate with a known status).
type Metrics struct {
	GenderParityRatio    *float64 `json:"gender_parity_ratio,omitempty"`
	SocioeconomicParity  *float64 `json:"socioeconomic_parity,omitempty"`
	OverallFairnessScore *float64 `json:"overall_fairness_score,omitempty"`
}

// Options override the project's stored configuration for one scoring
// call. Nil fields keep the project values.
type Options struct {
	Weights  Weights
	Fairness *FairnessConfig
}
