package matching

// Skill names the soft-skill components are keyed by. Scoring is by skill
// name string, so renaming either skill in the taxonomy silently zeroes
// the component; kept for compatibility with the stored data set.
const (
	skillNameCommunication = "Communication"
	skillNameLeadership    = "Leadership"
)

// technicalScore is the weighted mean of per-skill normalized scores over
// the project's requirement set. A candidate at or above the required
// level contributes a full 100 for that skill.
func technicalScore(candidateVec, requiredVec map[string]int, p Project) float64 {
	if len(p.Requirements) == 0 {
		return 0
	}

	var weightedSum float64
	var weightSum float64
	var plainSum float64

	for _, req := range p.Requirements {
		required := requiredVec[req.SkillName]
		actual := candidateVec[req.SkillName]

		var score float64
		if required > 0 {
			score = clampFloat(float64(actual)/float64(required)*100, 0, 100)
		} else if actual > 0 {
			score = 100
		}

		weight := requirementWeight(req)
		weightedSum += score * weight
		weightSum += weight
		plainSum += score
	}

	if weightSum <= 0 {
		// All-zero weights are in-range per requirement; fall back to the
		// unweighted mean rather than divide by zero.
		return plainSum / float64(len(p.Requirements))
	}
	return weightedSum / weightSum
}

// namedSkillScore returns the candidate's proficiency for the skill with
// the given display name, 0 when no record exists.
func namedSkillScore(c Candidate, skillName string) float64 {
	for _, prof := range c.Proficiencies {
		if prof.SkillName == skillName {
			return float64(clampInt(prof.Level, 0, 100))
		}
	}
	return 0
}

func experienceScore(c Candidate) float64 {
	years := c.YearsExperience
	if years < 0 {
		years = 0
	}
	return clampFloat(float64(years)*15, 0, 100)
}

func rawScore(technical, communication, leadership, experience float64, w Weights) float64 {
	return technical*w.resolve(WeightTechnical) +
		communication*w.resolve(WeightCommunication) +
		leadership*w.resolve(WeightLeadership) +
		experience*w.resolve(WeightExperience)
}
