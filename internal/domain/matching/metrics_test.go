package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCohortMetrics_GenderParityRatio(t *testing.T) {
	entries := []cohortEntry{
		{Gender: GenderFemale, Score: 80},
		{Gender: GenderMale, Score: 40},
	}

	m := cohortMetrics(entries)
	require.NotNil(t, m.GenderParityRatio)
	assert.InDelta(t, 0.5, *m.GenderParityRatio, 0.001)
}

func TestCohortMetrics_GenderRatioAveragesWithinGroups(t *testing.T) {
	entries := []cohortEntry{
		{Gender: GenderFemale, Score: 90},
		{Gender: GenderFemale, Score: 70},
		{Gender: GenderMale, Score: 100},
	}

	m := cohortMetrics(entries)
	require.NotNil(t, m.GenderParityRatio)
	assert.InDelta(t, 0.8, *m.GenderParityRatio, 0.001)
}

func TestCohortMetrics_SingleGenderGroupOmitted(t *testing.T) {
	entries := []cohortEntry{
		{Gender: GenderFemale, Score: 80},
		{Gender: GenderFemale, Score: 60},
		{Score: 90}, // unknown gender does not participate
	}

	m := cohortMetrics(entries)
	assert.Nil(t, m.GenderParityRatio)
}

func TestCohortMetrics_RatioOneWhenMaxAverageZero(t *testing.T) {
	entries := []cohortEntry{
		{Gender: GenderFemale, Score: 0},
		{Gender: GenderMale, Score: 0},
	}

	m := cohortMetrics(entries)
	require.NotNil(t, m.GenderParityRatio)
	assert.InDelta(t, 1.0, *m.GenderParityRatio, 0.001)
}

func TestCohortMetrics_SocioeconomicParity(t *testing.T) {
	entries := []cohortEntry{
		{SES: SESLow, Score: 60},
		{SES: SESHigh, Score: 80},
	}

	m := cohortMetrics(entries)
	require.NotNil(t, m.SocioeconomicParity)
	// Population std-dev of the group averages {60, 80}.
	assert.InDelta(t, 10.0, *m.SocioeconomicParity, 0.001)

	require.NotNil(t, m.OverallFairnessScore)
	assert.InDelta(t, -9.0, *m.OverallFairnessScore, 0.001)
}

func TestCohortMetrics_NoKnownSESOmitsParity(t *testing.T) {
	entries := []cohortEntry{{Score: 70}, {Score: 90}}

	m := cohortMetrics(entries)
	assert.Nil(t, m.SocioeconomicParity)
	require.NotNil(t, m.OverallFairnessScore)
	assert.InDelta(t, 1.0, *m.OverallFairnessScore, 0.001)
}

func TestCohortMetrics_EmptyRun(t *testing.T) {
	m := cohortMetrics(nil)
	assert.Nil(t, m.GenderParityRatio)
	assert.Nil(t, m.SocioeconomicParity)
	assert.Nil(t, m.OverallFairnessScore)
}
