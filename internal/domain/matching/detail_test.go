package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidence_EqualComponentsGiveMax(t *testing.T) {
	r := Result{TechnicalScore: 80, CommunicationScore: 80, LeadershipScore: 80, ExperienceScore: 80}
	// Zero variance: (1 + 0.9) / 2.
	assert.InDelta(t, 0.95, Confidence(r), 0.001)
}

func TestConfidence_SpreadLowersScore(t *testing.T) {
	r := Result{TechnicalScore: 100, CommunicationScore: 0, LeadershipScore: 100, ExperienceScore: 0}
	// Variance 2500 floors the spread factor at 0, leaving 0.9/2.
	assert.InDelta(t, 0.45, Confidence(r), 0.001)
}

func TestConfidence_ModerateSpread(t *testing.T) {
	r := Result{TechnicalScore: 90, CommunicationScore: 70, LeadershipScore: 90, ExperienceScore: 70}
	// Variance 100: ((1-0.1) + 0.9) / 2.
	assert.InDelta(t, 0.9, Confidence(r), 0.001)
}

func TestHeatmap_GapRowsFirstWithIntensity(t *testing.T) {
	p := Project{Requirements: []Requirement{
		{SkillName: "Python", RequiredLevel: intPtr(90)},
		{SkillName: "SQL", RequiredLevel: intPtr(50)},
	}}
	c := Candidate{Proficiencies: []Proficiency{
		{SkillName: "Python", Level: 45},
		{SkillName: "SQL", Level: 80},
	}}

	gaps := skillGaps(c, p)
	require.Len(t, gaps, 1)

	cells := Heatmap(c, p, gaps)
	require.Len(t, cells, 2)

	assert.Equal(t, "Python", cells[0].Skill)
	assert.InDelta(t, 0.5, cells[0].Intensity, 0.001)

	assert.Equal(t, "SQL", cells[1].Skill)
	assert.Equal(t, 50, cells[1].Required)
	assert.Equal(t, 80, cells[1].Actual)
	assert.InDelta(t, 1.0, cells[1].Intensity, 0.001)
}

func TestHeatmap_ZeroRequiredGapHasZeroIntensity(t *testing.T) {
	gaps := []SkillGap{{Skill: "Go", Required: 0, Actual: 0, Gap: 0}}
	cells := Heatmap(Candidate{}, Project{}, gaps)
	require.Len(t, cells, 1)
	assert.Zero(t, cells[0].Intensity)
}

func TestBreakdownFor_CarriesFullDecisionPath(t *testing.T) {
	r := Result{
		RawScore:           80.1,
		FinalScore:         85.1,
		FairnessBonus:      5,
		TechnicalScore:     100,
		CommunicationScore: 78,
		LeadershipScore:    0,
		ExperienceScore:    45,
		BiasMitigations:    []string{"a", "b"},
	}

	b := BreakdownFor(r, 2)
	assert.InDelta(t, 80.1, b.Assessment.Score, 0.001)
	assert.InDelta(t, 100.0, b.Assessment.Components[WeightTechnical], 0.001)
	assert.Equal(t, []string{"a", "b"}, b.Fairness.Adjustments)
	assert.InDelta(t, 5.0, b.Fairness.Bonus, 0.001)
	assert.InDelta(t, 85.1, b.Final.Score, 0.001)
	assert.Equal(t, 2, b.Final.Rank)
}
