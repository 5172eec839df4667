package matching

import "fmt"

// explanations turns the sub-scores, gaps and fairness bonus into an
// ordered list of typed statements. Rules trigger independently; an empty
// list just means nothing crossed a threshold.
func explanations(c Candidate, technical, communication, leadership float64, gaps []SkillGap, fairnessBonus float64) []Explanation {
	out := make([]Explanation, 0, 6)

	switch {
	case technical >= 85:
		out = append(out, Explanation{
			Type:     ExplanationStrength,
			Category: "Technical Excellence",
			Detail: fmt.Sprintf(
				"Exceptional technical alignment (%.1f%%) with project requirements. Candidate demonstrates mastery in key areas.",
				technical,
			),
			Impact: ImpactHigh,
		})
	case technical >= 70:
		out = append(out, Explanation{
			Type:     ExplanationNeutral,
			Category: "Technical Competency",
			Detail:   fmt.Sprintf("Solid technical foundation (%.1f%%) meets project needs.", technical),
			Impact:   ImpactMedium,
		})
	default:
		out = append(out, Explanation{
			Type:     ExplanationWeakness,
			Category: "Technical Gap",
			Detail: fmt.Sprintf(
				"Technical skills (%.1f%%) below optimal threshold. Consider upskilling program.",
				technical,
			),
			Impact: ImpactMedium,
		})
	}

	if communication >= 85 {
		out = append(out, Explanation{
			Type:     ExplanationStrength,
			Category: "Communication",
			Detail:   "Outstanding communication skills indicate strong team collaboration potential.",
			Impact:   ImpactHigh,
		})
	}

	if leadership >= 80 {
		out = append(out, Explanation{
			Type:     ExplanationStrength,
			Category: "Leadership",
			Detail:   "Demonstrated leadership capability suitable for mentoring or team lead roles.",
			Impact:   ImpactMedium,
		})
	}

	if len(gaps) > 0 {
		top := gaps[0]
		out = append(out, Explanation{
			Type:     ExplanationGap,
			Category: "Development Opportunity",
			Detail: fmt.Sprintf(
				"Primary gap in %s: %d/%d required. Recommended focus area for growth.",
				top.Skill, top.Actual, top.Required,
			),
			Impact: ImpactLow,
		})
	}

	if fairnessBonus > 0 {
		out = append(out, Explanation{
			Type:     ExplanationFairness,
			Category: "Equity Adjustment",
			Detail: fmt.Sprintf(
				"Applied %.0f%% fairness adjustment to ensure demographic parity and equal opportunity.",
				fairnessBonus,
			),
			Impact: ImpactAdjustment,
		})
	}

	if c.YearsExperience >= 5 {
		out = append(out, Explanation{
			Type:     ExplanationStrength,
			Category: "Experience",
			Detail: fmt.Sprintf(
				"%d years of industry experience brings valuable domain expertise.",
				c.YearsExperience,
			),
			Impact: ImpactMedium,
		})
	}

	return out
}
