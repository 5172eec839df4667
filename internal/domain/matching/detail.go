package matching

// HeatmapCell is one row of the per-skill competency heatmap: required vs
// actual, with intensity = actual/required for gap rows and 1.0 for rows
// without a recorded gap.
type HeatmapCell struct {
	Skill     string  `json:"skill"`
	Required  int     `json:"required"`
	Actual    int     `json:"actual"`
	Intensity float64 `json:"intensity"`
}

// Heatmap builds the competency heatmap for one scored pair: first the
// recorded gaps in severity order, then the remaining required skills.
func Heatmap(c Candidate, p Project, gaps []SkillGap) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(p.Requirements))

	gapSkills := make(map[string]struct{}, len(gaps))
	for _, g := range gaps {
		gapSkills[g.Skill] = struct{}{}

		intensity := 0.0
		if g.Required > 0 {
			intensity = float64(g.Actual) / float64(g.Required)
		}
		cells = append(cells, HeatmapCell{
			Skill:     g.Skill,
			Required:  g.Required,
			Actual:    g.Actual,
			Intensity: round3(intensity),
		})
	}

	byName := proficiencyByName(c)
	for _, req := range p.Requirements {
		if _, ok := gapSkills[req.SkillName]; ok {
			continue
		}

		actual := 0
		if prof, ok := byName[req.SkillName]; ok {
			actual = clampInt(prof.Level, 0, 100)
		}
		cells = append(cells, HeatmapCell{
			Skill:     req.SkillName,
			Required:  requiredLevel(req),
			Actual:    actual,
			Intensity: 1.0,
		})
	}

	return cells
}

// Confidence derives a per-match confidence from the spread of the four
// component scores, averaged with a fixed 0.9 completeness factor. The
// second factor is a documented placeholder, not a real data-completeness
// measure.
func Confidence(r Result) float64 {
	components := []float64{
		r.TechnicalScore,
		r.CommunicationScore,
		r.LeadershipScore,
		r.ExperienceScore,
	}

	var sum float64
	for _, s := range components {
		sum += s
	}
	mean := sum / float64(len(components))

	var sq float64
	for _, s := range components {
		d := s - mean
		sq += d * d
	}
	variance := sq / float64(len(components))

	spreadFactor := 1 - variance/1000
	if spreadFactor < 0 {
		spreadFactor = 0
	}

	return round3((spreadFactor + 0.9) / 2)
}

// Breakdown is the staged decision path for the detail view: raw
// assessment, fairness correction, final score.
type Breakdown struct {
	Assessment BreakdownAssessment `json:"initial_assessment"`
	Fairness   BreakdownFairness   `json:"fairness_correction"`
	Final      BreakdownFinal      `json:"final_scoring"`
}

type BreakdownAssessment struct {
	Stage       string             `json:"stage"`
	Description string             `json:"description"`
	Score       float64            `json:"score"`
	Components  map[string]float64 `json:"components"`
}

type BreakdownFairness struct {
	Stage       string   `json:"stage"`
	Description string   `json:"description"`
	Adjustments []string `json:"adjustments"`
	Bonus       float64  `json:"bonus"`
}

type BreakdownFinal struct {
	Stage       string  `json:"stage"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
}

func BreakdownFor(r Result, rank int) Breakdown {
	return Breakdown{
		Assessment: BreakdownAssessment{
			Stage:       "Initial Assessment",
			Description: "Raw competency evaluation",
			Score:       r.RawScore,
			Components: map[string]float64{
				WeightTechnical:     r.TechnicalScore,
				WeightCommunication: r.CommunicationScore,
				WeightLeadership:    r.LeadershipScore,
				WeightExperience:    r.ExperienceScore,
			},
		},
		Fairness: BreakdownFairness{
			Stage:       "Fairness Correction",
			Description: "Demographic parity adjustments",
			Adjustments: r.BiasMitigations,
			Bonus:       r.FairnessBonus,
		},
		Final: BreakdownFinal{
			Stage:       "Final Scoring",
			Description: "Normalized final match score",
			Score:       r.FinalScore,
			Rank:        rank,
		},
	}
}
