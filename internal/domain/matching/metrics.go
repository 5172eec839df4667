package matching

import "math"

type cohortEntry struct {
	Gender Gender
	SES    SocioeconomicStatus
	Score  float64
}

// cohortMetrics aggregates one run's final scores into demographic parity
// figures. Candidates without a known attribute simply do not participate
// in that grouping. An empty run yields empty metrics.
func cohortMetrics(entries []cohortEntry) Metrics {
	if len(entries) == 0 {
		return Metrics{}
	}

	var m Metrics

	genderAverages := groupAverages(entries, func(e cohortEntry) string { return string(e.Gender) })
	if len(genderAverages) > 1 {
		minAvg, maxAvg := minMax(genderAverages)
		ratio := 1.0
		if maxAvg > 0 {
			ratio = round3(minAvg / maxAvg)
		}
		m.GenderParityRatio = &ratio
	}

	sesParity := 0.0
	sesAverages := groupAverages(entries, func(e cohortEntry) string { return string(e.SES) })
	if len(sesAverages) > 0 {
		sesParity = round3(populationStdDev(sesAverages))
		m.SocioeconomicParity = &sesParity
	}

	// A simplistic proxy, not a calibrated fairness statistic.
	overall := round3(1 - sesParity)
	m.OverallFairnessScore = &overall

	return m
}

func groupAverages(entries []cohortEntry, key func(cohortEntry) string) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, e := range entries {
		k := key(e)
		if k == "" {
			continue
		}
		sums[k] += e.Score
		counts[k]++
	}

	averages := make(map[string]float64, len(sums))
	for k, sum := range sums {
		averages[k] = sum / float64(counts[k])
	}
	return averages
}

func minMax(values map[string]float64) (minV, maxV float64) {
	first := true
	for _, v := range values {
		if first {
			minV, maxV = v, v
			first = false
			continue
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}

func populationStdDev(values map[string]float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
