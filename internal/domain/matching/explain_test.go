package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByCategory(items []Explanation, category string) (Explanation, bool) {
	for _, e := range items {
		if e.Category == category {
			return e, true
		}
	}
	return Explanation{}, false
}

func TestExplanations_TechnicalTiers(t *testing.T) {
	cases := []struct {
		technical    float64
		wantType     string
		wantCategory string
		wantImpact   string
	}{
		{92.5, ExplanationStrength, "Technical Excellence", ImpactHigh},
		{85, ExplanationStrength, "Technical Excellence", ImpactHigh},
		{84.9, ExplanationNeutral, "Technical Competency", ImpactMedium},
		{70, ExplanationNeutral, "Technical Competency", ImpactMedium},
		{69.9, ExplanationWeakness, "Technical Gap", ImpactMedium},
		{0, ExplanationWeakness, "Technical Gap", ImpactMedium},
	}

	for _, tc := range cases {
		out := explanations(Candidate{}, tc.technical, 0, 0, nil, 0)
		require.NotEmpty(t, out)
		assert.Equal(t, tc.wantType, out[0].Type)
		assert.Equal(t, tc.wantCategory, out[0].Category)
		assert.Equal(t, tc.wantImpact, out[0].Impact)
	}
}

func TestExplanations_DetailEmbedsOneDecimal(t *testing.T) {
	out := explanations(Candidate{}, 87.25, 0, 0, nil, 0)
	require.NotEmpty(t, out)
	assert.Contains(t, out[0].Detail, "87.2%")
}

func TestExplanations_SoftSkillThresholds(t *testing.T) {
	out := explanations(Candidate{}, 50, 85, 80, nil, 0)

	comm, ok := findByCategory(out, "Communication")
	require.True(t, ok)
	assert.Equal(t, ExplanationStrength, comm.Type)
	assert.Equal(t, ImpactHigh, comm.Impact)

	lead, ok := findByCategory(out, "Leadership")
	require.True(t, ok)
	assert.Equal(t, ImpactMedium, lead.Impact)

	out = explanations(Candidate{}, 50, 84.9, 79.9, nil, 0)
	_, ok = findByCategory(out, "Communication")
	assert.False(t, ok)
	_, ok = findByCategory(out, "Leadership")
	assert.False(t, ok)
}

func TestExplanations_LargestGapOnly(t *testing.T) {
	gaps := []SkillGap{
		{Skill: "Machine Learning", Required: 85, Actual: 20, Gap: 65},
		{Skill: "Python", Required: 90, Actual: 60, Gap: 30},
	}

	out := explanations(Candidate{}, 50, 0, 0, gaps, 0)
	gap, ok := findByCategory(out, "Development Opportunity")
	require.True(t, ok)
	assert.Equal(t, ExplanationGap, gap.Type)
	assert.Equal(t, ImpactLow, gap.Impact)
	assert.Contains(t, gap.Detail, "Machine Learning")
	assert.Contains(t, gap.Detail, "20/85")
}

func TestExplanations_FairnessEntryOnlyWhenBonusPositive(t *testing.T) {
	out := explanations(Candidate{}, 50, 0, 0, nil, 5)
	entry, ok := findByCategory(out, "Equity Adjustment")
	require.True(t, ok)
	assert.Equal(t, ExplanationFairness, entry.Type)
	assert.Equal(t, ImpactAdjustment, entry.Impact)
	assert.Contains(t, entry.Detail, "5%")

	out = explanations(Candidate{}, 50, 0, 0, nil, 0)
	_, ok = findByCategory(out, "Equity Adjustment")
	assert.False(t, ok)
}

func TestExplanations_ExperienceEntryAtFiveYears(t *testing.T) {
	out := explanations(Candidate{YearsExperience: 5}, 50, 0, 0, nil, 0)
	entry, ok := findByCategory(out, "Experience")
	require.True(t, ok)
	assert.Contains(t, entry.Detail, "5 years")

	out = explanations(Candidate{YearsExperience: 4}, 50, 0, 0, nil, 0)
	_, ok = findByCategory(out, "Experience")
	assert.False(t, ok)
}

func TestExplanations_MultipleRulesFireInOrder(t *testing.T) {
	gaps := []SkillGap{{Skill: "SQL", Required: 70, Actual: 10, Gap: 60}}
	out := explanations(Candidate{YearsExperience: 8}, 90, 90, 85, gaps, 3)

	require.Len(t, out, 6)
	assert.Equal(t, "Technical Excellence", out[0].Category)
	assert.Equal(t, "Communication", out[1].Category)
	assert.Equal(t, "Leadership", out[2].Category)
	assert.Equal(t, "Development Opportunity", out[3].Category)
	assert.Equal(t, "Equity Adjustment", out[4].Category)
	assert.Equal(t, "Experience", out[5].Category)
}
