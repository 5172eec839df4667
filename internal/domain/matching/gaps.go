package matching

import "sort"

// skillGaps lists every required skill the candidate falls short on,
// sorted by shortfall descending. The sort is stable so ties keep the
// requirement enumeration order.
func skillGaps(c Candidate, p Project) []SkillGap {
	byName := proficiencyByName(c)

	gaps := make([]SkillGap, 0, len(p.Requirements))
	for _, req := range p.Requirements {
		required := requiredLevel(req)

		actual := 0
		if prof, ok := byName[req.SkillName]; ok {
			actual = clampInt(prof.Level, 0, 100)
		}

		if actual < required {
			gaps = append(gaps, SkillGap{
				Skill:    req.SkillName,
				Required: required,
				Actual:   actual,
				Gap:      required - actual,
			})
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})
	return gaps
}
