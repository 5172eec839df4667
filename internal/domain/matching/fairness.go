package matching

import "fmt"

const (
	sesBoostAmount        = 3.0
	genderParityAmount    = 2.0
	earlyCareerAmount     = 1.0
	earlyCareerYearsBelow = 3
	earlyCareerRawAbove   = 70.0
)

// applyFairness evaluates the additive rule set against one candidate.
// Rules are independent, order-fixed and never negative; the returned
// mitigation messages follow rule evaluation order.
func applyFairness(c Candidate, raw float64, cfg FairnessConfig) (float64, []string) {
	var bonus float64
	mitigations := make([]string, 0, 3)

	if cfg.SocioeconomicBoost && c.SocioeconomicStatus == SESLow {
		bonus += sesBoostAmount
		mitigations = append(mitigations, fmt.Sprintf(
			"Socioeconomic opportunity boost applied (+3%%) for candidate from %s SES background",
			c.SocioeconomicStatus,
		))
	}

	if cfg.GenderParity && (c.Gender == GenderFemale || c.Gender == GenderNonBinary) {
		bonus += genderParityAmount
		mitigations = append(mitigations, fmt.Sprintf(
			"Gender parity adjustment (+2%%) applied to promote diversity in %s representation",
			c.Gender,
		))
	}

	// Not gated by config: prevents bias against early-career candidates
	// who already score high on raw competency.
	if c.YearsExperience < earlyCareerYearsBelow && raw > earlyCareerRawAbove {
		bonus += earlyCareerAmount
		mitigations = append(mitigations,
			"Early career potential boost (+1%) for high-performing junior candidate")
	}

	return bonus, mitigations
}
