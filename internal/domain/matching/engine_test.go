package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func fairnessPtr(c FairnessConfig) *FairnessConfig { return &c }

// researchProject mirrors the reference data set: Python(90, w1.5),
// ML(85, w2.0), Communication(70, w1.0) with default weights.
func researchProject() Project {
	return Project{
		ID: uuid.New(),
		Weights: Weights{
			WeightTechnical:     0.6,
			WeightCommunication: 0.2,
			WeightLeadership:    0.1,
			WeightExperience:    0.1,
		},
		Fairness: DefaultFairnessConfig(),
		Requirements: []Requirement{
			{SkillID: uuid.New(), SkillName: "Python", RequiredLevel: intPtr(90), Weight: floatPtr(1.5)},
			{SkillID: uuid.New(), SkillName: "Machine Learning", RequiredLevel: intPtr(85), Weight: floatPtr(2.0)},
			{SkillID: uuid.New(), SkillName: "Communication", RequiredLevel: intPtr(70), Weight: floatPtr(1.0)},
		},
	}
}

func strongCandidate() Candidate {
	return Candidate{
		ID:                  uuid.New(),
		Gender:              GenderNonBinary,
		SocioeconomicStatus: SESLow,
		YearsExperience:     3,
		Proficiencies: []Proficiency{
			{SkillName: "Python", Level: 95, Years: 3},
			{SkillName: "Machine Learning", Level: 88, Years: 2},
			{SkillName: "Communication", Level: 78, Years: 3},
		},
	}
}

func TestScore_ReferenceScenario(t *testing.T) {
	res := Score(strongCandidate(), researchProject(), Options{})

	assert.InDelta(t, 100.0, res.TechnicalScore, 0.001)
	assert.InDelta(t, 78.0, res.CommunicationScore, 0.001)
	assert.InDelta(t, 0.0, res.LeadershipScore, 0.001)
	assert.InDelta(t, 45.0, res.ExperienceScore, 0.001)
	assert.InDelta(t, 80.1, res.RawScore, 0.001)

	// +3 low SES, +2 non_binary, no early-career boost at exactly 3 years.
	assert.InDelta(t, 5.0, res.FairnessBonus, 0.001)
	assert.InDelta(t, 85.1, res.FinalScore, 0.001)
	assert.Len(t, res.BiasMitigations, 2)
	assert.Equal(t, Version, res.AlgorithmVersion)
}

func TestScore_AllScoresWithinBounds(t *testing.T) {
	candidates := []Candidate{
		{},
		{YearsExperience: 50, Proficiencies: []Proficiency{{SkillName: "Python", Level: 100}}},
		strongCandidate(),
		{Gender: GenderFemale, SocioeconomicStatus: SESLow, YearsExperience: 1,
			Proficiencies: []Proficiency{
				{SkillName: "Python", Level: 100},
				{SkillName: "Machine Learning", Level: 100},
				{SkillName: "Communication", Level: 100},
				{SkillName: "Leadership", Level: 100},
			}},
	}

	for _, c := range candidates {
		res := Score(c, researchProject(), Options{})
		for name, score := range map[string]float64{
			"raw":           res.RawScore,
			"final":         res.FinalScore,
			"technical":     res.TechnicalScore,
			"communication": res.CommunicationScore,
			"leadership":    res.LeadershipScore,
			"experience":    res.ExperienceScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0, name)
			assert.LessOrEqual(t, score, 100.0, name)
		}
		assert.GreaterOrEqual(t, res.FairnessBonus, 0.0)
	}
}

func TestScore_FinalScoreClampedAt100(t *testing.T) {
	c := Candidate{
		Gender:              GenderFemale,
		SocioeconomicStatus: SESLow,
		YearsExperience:     10,
		Proficiencies: []Proficiency{
			{SkillName: "Python", Level: 100},
			{SkillName: "Machine Learning", Level: 100},
			{SkillName: "Communication", Level: 100},
			{SkillName: "Leadership", Level: 100},
		},
	}

	res := Score(c, researchProject(), Options{})
	assert.InDelta(t, 100.0, res.FinalScore, 0.001)
	assert.Greater(t, res.FairnessBonus, 0.0)
}

func TestScore_NoRequiredSkills_TechnicalZero(t *testing.T) {
	p := researchProject()
	p.Requirements = nil

	res := Score(strongCandidate(), p, Options{})
	assert.Zero(t, res.TechnicalScore)
	assert.Empty(t, res.SkillGaps)
}

func TestScore_DefaultWeightsWhenKeysMissing(t *testing.T) {
	p := researchProject()
	p.Weights = Weights{WeightTechnical: 0.5}

	res := Score(strongCandidate(), p, Options{})
	// 0.5 technical, remaining keys default to 0.2/0.1/0.1.
	assert.InDelta(t, 50+15.6+0+4.5, res.RawScore, 0.001)
}

func TestScore_WeightOverride(t *testing.T) {
	res := Score(strongCandidate(), researchProject(), Options{
		Weights: Weights{
			WeightTechnical:     1.0,
			WeightCommunication: 0,
			WeightLeadership:    0,
			WeightExperience:    0,
		},
	})
	assert.InDelta(t, 100.0, res.RawScore, 0.001)
}

func TestScore_Idempotent(t *testing.T) {
	c := strongCandidate()
	p := researchProject()

	first := Score(c, p, Options{})
	second := Score(c, p, Options{})
	assert.Equal(t, first, second)
}

func TestRun_RanksAreDenseAndDescending(t *testing.T) {
	p := researchProject()
	candidates := []Candidate{
		{ID: uuid.New(), YearsExperience: 1, Proficiencies: []Proficiency{{SkillName: "Python", Level: 30}}},
		strongCandidate(),
		{ID: uuid.New(), YearsExperience: 6, Proficiencies: []Proficiency{
			{SkillName: "Python", Level: 85},
			{SkillName: "Machine Learning", Level: 80},
			{SkillName: "Communication", Level: 90},
		}},
	}

	matches, _ := Run(p, candidates, nil)
	require.Len(t, matches, len(candidates))

	seen := map[int]bool{}
	for i, m := range matches {
		assert.Equal(t, i+1, m.Rank)
		assert.False(t, seen[m.Rank])
		seen[m.Rank] = true
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].FinalScore, m.FinalScore)
		}
	}
}

func TestRun_StableOrderOnTies(t *testing.T) {
	p := Project{
		ID:       uuid.New(),
		Fairness: FairnessConfig{},
		Requirements: []Requirement{
			{SkillID: uuid.New(), SkillName: "Go", RequiredLevel: intPtr(50), Weight: floatPtr(1.0)},
		},
	}

	first := uuid.New()
	second := uuid.New()
	same := []Proficiency{{SkillName: "Go", Level: 50}}
	candidates := []Candidate{
		{ID: first, Proficiencies: same},
		{ID: second, Proficiencies: same},
	}

	matches, _ := Run(p, candidates, nil)
	require.Len(t, matches, 2)
	assert.Equal(t, first, matches[0].CandidateID)
	assert.Equal(t, second, matches[1].CandidateID)
	assert.Equal(t, matches[0].FinalScore, matches[1].FinalScore)
}

func TestRun_EmptyCandidateSet(t *testing.T) {
	matches, metrics := Run(researchProject(), nil, nil)
	assert.Empty(t, matches)
	assert.Nil(t, metrics.GenderParityRatio)
	assert.Nil(t, metrics.SocioeconomicParity)
	assert.Nil(t, metrics.OverallFairnessScore)
}

func TestRun_FairnessOverrideDisablesBoosts(t *testing.T) {
	p := researchProject()
	c := strongCandidate()

	baseline, _ := Run(p, []Candidate{c}, nil)
	require.Len(t, baseline, 1)
	require.InDelta(t, 5.0, baseline[0].FairnessBonus, 0.001)

	disabled, _ := Run(p, []Candidate{c}, fairnessPtr(FairnessConfig{}))
	require.Len(t, disabled, 1)
	assert.Zero(t, disabled[0].FairnessBonus)
	assert.InDelta(t, baseline[0].RawScore, disabled[0].RawScore, 0.001)
}
