package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skillmatch/internal/domain/match"
	"skillmatch/internal/domain/matching"
	"skillmatch/internal/infrastructure/cache"
	"skillmatch/internal/repository"
	"skillmatch/internal/ws"
)

// ResultCache is the slice of the cache the matching flow needs; the
// concrete Redis client satisfies it, tests substitute fakes.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateProjectResults(ctx context.Context, projectID string) error
}

type RunNotifier interface {
	NotifyMatchingCompleted(p ws.MatchingCompletedPayload)
}

type RunMatchingInput struct {
	ProjectID    uuid.UUID
	CandidateIDs []uuid.UUID

	WeightOverride   matching.Weights
	FairnessOverride *matching.FairnessConfig
}

type RunMatchingOutput struct {
	ProjectID           uuid.UUID        `json:"project_id"`
	Results             []match.Result   `json:"results"`
	Metrics             matching.Metrics `json:"metrics"`
	CandidatesEvaluated int              `json:"candidates_evaluated"`
	ProcessingTimeMS    float64          `json:"processing_time_ms"`
	AlgorithmVersion    string           `json:"algorithm_version"`
}

// ExplanationDetail is the audit view for one stored match: the staged
// decision path, the per-skill heatmap, applied mitigations and a
// confidence estimate.
type ExplanationDetail struct {
	MatchID     uuid.UUID `json:"match_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	ProjectID   uuid.UUID `json:"project_id"`

	Breakdown       matching.Breakdown     `json:"decision_breakdown"`
	Heatmap         []matching.HeatmapCell `json:"competency_heatmap"`
	BiasMitigations []string               `json:"bias_mitigations"`
	Confidence      float64                `json:"confidence"`

	AlgorithmVersion string `json:"algorithm_version"`
}

// DistributionEntry is one demographic bucket in the analytics view.
type DistributionEntry struct {
	Count    int     `json:"count"`
	AvgScore float64 `json:"avg_score"`
}

type FairnessAnalytics struct {
	TotalMatches              int                          `json:"total_matches"`
	AverageScore              float64                      `json:"average_score"`
	GenderDistribution        map[string]DistributionEntry `json:"gender_distribution"`
	SocioeconomicDistribution map[string]DistributionEntry `json:"socioeconomic_distribution"`
	FairnessScore             float64                      `json:"fairness_score"`
}

type MatchingUsecase interface {
	RunMatching(ctx context.Context, in RunMatchingInput) (RunMatchingOutput, error)
	ListProjectMatches(ctx context.Context, projectID uuid.UUID) ([]match.Result, error)
	GetExplanation(ctx context.Context, matchID uuid.UUID) (ExplanationDetail, error)
	ListCandidateMatches(ctx context.Context, candidateID uuid.UUID, minScore float64) ([]match.Result, error)
	GetFairnessAnalytics(ctx context.Context, projectID uuid.UUID) (FairnessAnalytics, error)
}

type Matching struct {
	projects   repository.ProjectRepository
	candidates repository.CandidateRepository
	results    repository.MatchResultRepository

	cache    ResultCache
	notifier RunNotifier
	log      *zap.Logger
}

func NewMatchingUsecase(
	projects repository.ProjectRepository,
	candidates repository.CandidateRepository,
	results repository.MatchResultRepository,
	resultCache ResultCache,
	notifier RunNotifier,
	log *zap.Logger,
) *Matching {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matching{
		projects:   projects,
		candidates: candidates,
		results:    results,
		cache:      resultCache,
		notifier:   notifier,
		log:        log,
	}
}

func (u *Matching) RunMatching(ctx context.Context, in RunMatchingInput) (RunMatchingOutput, error) {
	start := time.Now()

	if err := validateWeights(in.WeightOverride); err != nil {
		return RunMatchingOutput{}, err
	}
	if in.FairnessOverride != nil {
		if err := validateFairness(*in.FairnessOverride); err != nil {
			return RunMatchingOutput{}, err
		}
	}

	p, err := u.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return RunMatchingOutput{}, ErrProjectNotFound
		}
		return RunMatchingOutput{}, ErrInternal
	}

	cands, err := u.candidates.ListActive(ctx, in.CandidateIDs)
	if err != nil {
		return RunMatchingOutput{}, ErrInternal
	}

	engineProject := p.ToEngine()
	if in.WeightOverride != nil {
		engineProject.Weights = in.WeightOverride
	}

	engineCandidates := make([]matching.Candidate, 0, len(cands))
	for _, c := range cands {
		engineCandidates = append(engineCandidates, c.ToEngine())
	}

	ranked, metrics := matching.Run(engineProject, engineCandidates, in.FairnessOverride)

	now := time.Now().UTC()
	stored := make([]match.Result, 0, len(ranked))
	for _, m := range ranked {
		stored = append(stored, match.Result{
			ID:                 uuid.New(),
			CandidateID:        m.CandidateID,
			ProjectID:          p.ID,
			RawScore:           m.RawScore,
			FinalScore:         m.FinalScore,
			FairnessBonus:      m.FairnessBonus,
			TechnicalScore:     m.TechnicalScore,
			CommunicationScore: m.CommunicationScore,
			LeadershipScore:    m.LeadershipScore,
			ExperienceScore:    m.ExperienceScore,
			SkillGaps:          m.SkillGaps,
			Explanations:       m.Explanations,
			BiasMitigations:    m.BiasMitigations,
			Rank:               m.Rank,
			AlgorithmVersion:   m.AlgorithmVersion,
			CalculatedAt:       now,
		})
	}

	if err := u.results.ReplaceForProject(ctx, p.ID, stored); err != nil {
		return RunMatchingOutput{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.InvalidateProjectResults(ctx, p.ID.String()); err != nil {
			u.log.Warn("cache invalidation failed", zap.String("project_id", p.ID.String()), zap.Error(err))
		}
		if err := u.cache.SetJSON(ctx, cache.ProjectResultsKey(p.ID.String()), stored, 0); err != nil {
			u.log.Warn("cache prime failed", zap.String("project_id", p.ID.String()), zap.Error(err))
		}
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if u.notifier != nil {
		u.notifier.NotifyMatchingCompleted(ws.MatchingCompletedPayload{
			ProjectID:        p.ID.String(),
			CandidatesRanked: len(stored),
			ProcessingTimeMS: elapsed,
		})
	}

	u.log.Info("matching run completed",
		zap.String("project_id", p.ID.String()),
		zap.Int("candidates", len(stored)),
		zap.Float64("processing_ms", elapsed),
	)

	return RunMatchingOutput{
		ProjectID:           p.ID,
		Results:             stored,
		Metrics:             metrics,
		CandidatesEvaluated: len(stored),
		ProcessingTimeMS:    elapsed,
		AlgorithmVersion:    matching.Version,
	}, nil
}

func (u *Matching) ListProjectMatches(ctx context.Context, projectID uuid.UUID) ([]match.Result, error) {
	if u.cache != nil {
		var cached []match.Result
		if ok, err := u.cache.GetJSON(ctx, cache.ProjectResultsKey(projectID.String()), &cached); err == nil && ok {
			return cached, nil
		}
	}

	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}

	items, err := u.results.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil && len(items) > 0 {
		if err := u.cache.SetJSON(ctx, cache.ProjectResultsKey(projectID.String()), items, 0); err != nil {
			u.log.Warn("cache prime failed", zap.String("project_id", projectID.String()), zap.Error(err))
		}
	}
	return items, nil
}

func (u *Matching) GetExplanation(ctx context.Context, matchID uuid.UUID) (ExplanationDetail, error) {
	m, err := u.results.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return ExplanationDetail{}, ErrMatchNotFound
		}
		return ExplanationDetail{}, ErrInternal
	}

	if u.cache != nil {
		var cached ExplanationDetail
		key := cache.ExplanationKey(m.ProjectID.String(), m.ID.String())
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	c, err := u.candidates.GetByID(ctx, m.CandidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ExplanationDetail{}, ErrCandidateNotFound
		}
		return ExplanationDetail{}, ErrInternal
	}
	p, err := u.projects.GetByID(ctx, m.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ExplanationDetail{}, ErrProjectNotFound
		}
		return ExplanationDetail{}, ErrInternal
	}

	result := toEngineResult(m)

	detail := ExplanationDetail{
		MatchID:          m.ID,
		CandidateID:      m.CandidateID,
		ProjectID:        m.ProjectID,
		Breakdown:        matching.BreakdownFor(result, m.Rank),
		Heatmap:          matching.Heatmap(c.ToEngine(), p.ToEngine(), m.SkillGaps),
		BiasMitigations:  m.BiasMitigations,
		Confidence:       matching.Confidence(result),
		AlgorithmVersion: m.AlgorithmVersion,
	}

	if u.cache != nil {
		key := cache.ExplanationKey(m.ProjectID.String(), m.ID.String())
		if err := u.cache.SetJSON(ctx, key, detail, 0); err != nil {
			u.log.Warn("cache prime failed", zap.String("match_id", m.ID.String()), zap.Error(err))
		}
	}
	return detail, nil
}

func (u *Matching) ListCandidateMatches(ctx context.Context, candidateID uuid.UUID, minScore float64) ([]match.Result, error) {
	if minScore < 0 || minScore > 100 {
		return nil, ErrInvalidInput
	}

	if _, err := u.candidates.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	items, err := u.results.ListByCandidate(ctx, candidateID, minScore)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// GetFairnessAnalytics aggregates the stored run into demographic buckets
// with per-group average scores. The fairness score is the mean of the
// min/max group-average ratios over gender and socioeconomic status; a
// dimension with fewer than two groups counts as balanced.
func (u *Matching) GetFairnessAnalytics(ctx context.Context, projectID uuid.UUID) (FairnessAnalytics, error) {
	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return FairnessAnalytics{}, ErrProjectNotFound
		}
		return FairnessAnalytics{}, ErrInternal
	}

	matches, err := u.results.ListByProject(ctx, projectID)
	if err != nil {
		return FairnessAnalytics{}, ErrInternal
	}

	out := FairnessAnalytics{
		GenderDistribution:        map[string]DistributionEntry{},
		SocioeconomicDistribution: map[string]DistributionEntry{},
		FairnessScore:             1.0,
	}
	if len(matches) == 0 {
		return out, nil
	}

	var total float64
	for _, m := range matches {
		total += m.FinalScore

		c, err := u.candidates.GetByID(ctx, m.CandidateID)
		if err != nil {
			continue
		}
		if c.Gender != nil {
			addToDistribution(out.GenderDistribution, string(*c.Gender), m.FinalScore)
		}
		if c.SocioeconomicStatus != nil {
			addToDistribution(out.SocioeconomicDistribution, string(*c.SocioeconomicStatus), m.FinalScore)
		}
	}

	out.TotalMatches = len(matches)
	out.AverageScore = total / float64(len(matches))
	out.FairnessScore = (distributionParity(out.GenderDistribution) + distributionParity(out.SocioeconomicDistribution)) / 2
	return out, nil
}

func addToDistribution(dist map[string]DistributionEntry, key string, score float64) {
	e := dist[key]
	e.AvgScore = (e.AvgScore*float64(e.Count) + score) / float64(e.Count+1)
	e.Count++
	dist[key] = e
}

func distributionParity(dist map[string]DistributionEntry) float64 {
	if len(dist) < 2 {
		return 1.0
	}

	first := true
	var min, max float64
	for _, e := range dist {
		if first {
			min, max = e.AvgScore, e.AvgScore
			first = false
			continue
		}
		if e.AvgScore < min {
			min = e.AvgScore
		}
		if e.AvgScore > max {
			max = e.AvgScore
		}
	}
	if max == 0 {
		return 1.0
	}
	return min / max
}

func toEngineResult(m match.Result) matching.Result {
	return matching.Result{
		RawScore:           m.RawScore,
		FinalScore:         m.FinalScore,
		FairnessBonus:      m.FairnessBonus,
		TechnicalScore:     m.TechnicalScore,
		CommunicationScore: m.CommunicationScore,
		LeadershipScore:    m.LeadershipScore,
		ExperienceScore:    m.ExperienceScore,
		SkillGaps:          m.SkillGaps,
		Explanations:       m.Explanations,
		BiasMitigations:    m.BiasMitigations,
		AlgorithmVersion:   m.AlgorithmVersion,
	}
}
