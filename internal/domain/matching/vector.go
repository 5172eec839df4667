package matching

const defaultRequiredLevel = 80

// buildCandidateVector maps each required skill to the candidate's
// proficiency level, 0 when no record exists.
func buildCandidateVector(c Candidate, p Project) map[string]int {
	byName := proficiencyByName(c)

	vector := make(map[string]int, len(p.Requirements))
	for _, req := range p.Requirements {
		level := 0
		if prof, ok := byName[req.SkillName]; ok {
			level = clampInt(prof.Level, 0, 100)
		}
		vector[req.SkillName] = level
	}
	return vector
}

// buildRequirementVector maps each required skill to its required level,
// substituting the default for absent or malformed rows.
func buildRequirementVector(p Project) map[string]int {
	vector := make(map[string]int, len(p.Requirements))
	for _, req := range p.Requirements {
		vector[req.SkillName] = requiredLevel(req)
	}
	return vector
}

func requiredLevel(req Requirement) int {
	if req.RequiredLevel == nil {
		return defaultRequiredLevel
	}
	lvl := *req.RequiredLevel
	if lvl < 0 || lvl > 100 {
		return defaultRequiredLevel
	}
	return lvl
}

func requirementWeight(req Requirement) float64 {
	if req.Weight == nil {
		return 1.0
	}
	return *req.Weight
}

func proficiencyByName(c Candidate) map[string]Proficiency {
	m := make(map[string]Proficiency, len(c.Proficiencies))
	for _, prof := range c.Proficiencies {
		if prof.SkillName == "" {
			continue
		}
		m[prof.SkillName] = prof
	}
	return m
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
