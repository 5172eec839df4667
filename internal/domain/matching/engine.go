package matching

import (
	"sort"

	"github.com/google/uuid"
)

// Score runs the full pipeline for one candidate/project pair: vectors,
// component scores, fairness adjustment, gaps and explanations. Identical
// inputs always produce identical output.
func Score(c Candidate, p Project, opts Options) Result {
	weights := p.Weights
	if opts.Weights != nil {
		weights = opts.Weights
	}
	fairness := p.Fairness
	if opts.Fairness != nil {
		fairness = *opts.Fairness
	}

	candidateVec := buildCandidateVector(c, p)
	requiredVec := buildRequirementVector(p)

	technical := technicalScore(candidateVec, requiredVec, p)
	communication := namedSkillScore(c, skillNameCommunication)
	leadership := namedSkillScore(c, skillNameLeadership)
	experience := experienceScore(c)

	raw := rawScore(technical, communication, leadership, experience, weights)
	bonus, mitigations := applyFairness(c, raw, fairness)
	final := clampFloat(raw+bonus, 0, 100)

	gaps := skillGaps(c, p)

	return Result{
		RawScore:           round2(raw),
		FinalScore:         round2(final),
		FairnessBonus:      round2(bonus),
		TechnicalScore:     round2(technical),
		CommunicationScore: round2(communication),
		LeadershipScore:    round2(leadership),
		ExperienceScore:    round2(experience),
		SkillGaps:          gaps,
		Explanations:       explanations(c, technical, communication, leadership, gaps, bonus),
		BiasMitigations:    mitigations,
		AlgorithmVersion:   Version,
	}
}

// Run scores every candidate against the project, ranks the results by
// final score descending (stable: ties keep candidate-set order) and
// computes the cohort metrics. An empty candidate set is valid and yields
// zero matches with empty metrics.
func Run(p Project, candidates []Candidate, fairnessOverride *FairnessConfig) ([]RankedMatch, Metrics) {
	opts := Options{Fairness: fairnessOverride}

	matches := make([]RankedMatch, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, RankedMatch{
			CandidateID: c.ID,
			Result:      Score(c, p, opts),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FinalScore > matches[j].FinalScore
	})
	for i := range matches {
		matches[i].Rank = i + 1
	}

	byID := make(map[uuid.UUID]Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	entries := make([]cohortEntry, 0, len(matches))
	for _, m := range matches {
		c := byID[m.CandidateID]
		entries = append(entries, cohortEntry{
			Gender: c.Gender,
			SES:    c.SocioeconomicStatus,
			Score:  m.FinalScore,
		})
	}

	return matches, cohortMetrics(entries)
}
