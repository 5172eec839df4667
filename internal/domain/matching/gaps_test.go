package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillGaps_OnlyShortfallsSortedDescending(t *testing.T) {
	p := Project{Requirements: []Requirement{
		{SkillName: "Go", RequiredLevel: intPtr(90)},
		{SkillName: "SQL", RequiredLevel: intPtr(60)},
		{SkillName: "Docker", RequiredLevel: intPtr(70)},
	}}
	c := Candidate{Proficiencies: []Proficiency{
		{SkillName: "Go", Level: 30},
		{SkillName: "SQL", Level: 70},
		{SkillName: "Docker", Level: 50},
	}}

	gaps := skillGaps(c, p)
	require.Len(t, gaps, 2)

	assert.Equal(t, SkillGap{Skill: "Go", Required: 90, Actual: 30, Gap: 60}, gaps[0])
	assert.Equal(t, SkillGap{Skill: "Docker", Required: 70, Actual: 50, Gap: 20}, gaps[1])

	for _, g := range gaps {
		assert.Less(t, g.Actual, g.Required)
	}
}

func TestSkillGaps_StableTieOrder(t *testing.T) {
	p := Project{Requirements: []Requirement{
		{SkillName: "Kubernetes", RequiredLevel: intPtr(80)},
		{SkillName: "AWS", RequiredLevel: intPtr(80)},
	}}

	gaps := skillGaps(Candidate{}, p)
	require.Len(t, gaps, 2)
	assert.Equal(t, "Kubernetes", gaps[0].Skill)
	assert.Equal(t, "AWS", gaps[1].Skill)
}

func TestSkillGaps_MissingProficiencyCountsAsZero(t *testing.T) {
	p := Project{Requirements: []Requirement{
		{SkillName: "Go", RequiredLevel: intPtr(75)},
	}}

	gaps := skillGaps(Candidate{}, p)
	require.Len(t, gaps, 1)
	assert.Equal(t, 0, gaps[0].Actual)
	assert.Equal(t, 75, gaps[0].Gap)
}

func TestSkillGaps_MalformedRequirementDefaultsTo80(t *testing.T) {
	p := Project{Requirements: []Requirement{
		{SkillName: "Go", RequiredLevel: nil},
	}}
	c := Candidate{Proficiencies: []Proficiency{{SkillName: "Go", Level: 79}}}

	gaps := skillGaps(c, p)
	require.Len(t, gaps, 1)
	assert.Equal(t, 80, gaps[0].Required)
	assert.Equal(t, 1, gaps[0].Gap)
}

func TestSkillGaps_NoGapWhenRequirementMet(t *testing.T) {
	p := Project{Requirements: []Requirement{
		{SkillName: "Go", RequiredLevel: intPtr(70)},
	}}
	c := Candidate{Proficiencies: []Proficiency{{SkillName: "Go", Level: 70}}}

	assert.Empty(t, skillGaps(c, p))
}
