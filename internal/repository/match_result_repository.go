package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skillmatch/internal/database"
	"skillmatch/internal/domain/match"
	"skillmatch/internal/domain/matching"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchResultRepository interface {
	// ReplaceForProject atomically swaps the stored run for a project: all
	// previous rows are dropped and the fresh ranking is inserted.
	ReplaceForProject(ctx context.Context, projectID uuid.UUID, results []match.Result) error

	GetByID(ctx context.Context, id uuid.UUID) (match.Result, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]match.Result, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, minScore float64) ([]match.Result, error)
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

const matchColumns = `id, candidate_id, project_id,
	raw_score, final_score, fairness_bonus,
	technical_score, communication_score, leadership_score, experience_score,
	skill_gaps, explanations, bias_mitigations,
	rank, algorithm_version, calculated_at`

func (r *PostgresMatchResultRepository) ReplaceForProject(ctx context.Context, projectID uuid.UUID, results []match.Result) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM match_results WHERE project_id = $1`, projectID); err != nil {
		return err
	}

	for _, m := range results {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}

		gapsJSON, err := json.Marshal(m.SkillGaps)
		if err != nil {
			return err
		}
		explanationsJSON, err := json.Marshal(m.Explanations)
		if err != nil {
			return err
		}
		mitigationsJSON, err := json.Marshal(m.BiasMitigations)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO match_results
			 (id, candidate_id, project_id,
			  raw_score, final_score, fairness_bonus,
			  technical_score, communication_score, leadership_score, experience_score,
			  skill_gaps, explanations, bias_mitigations,
			  rank, algorithm_version, calculated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			m.ID, m.CandidateID, m.ProjectID,
			m.RawScore, m.FinalScore, m.FairnessBonus,
			m.TechnicalScore, m.CommunicationScore, m.LeadershipScore, m.ExperienceScore,
			gapsJSON, explanationsJSON, mitigationsJSON,
			m.Rank, m.AlgorithmVersion, m.CalculatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresMatchResultRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Result, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM match_results WHERE id = $1`, id)
	return scanMatchResult(row)
}

func (r *PostgresMatchResultRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]match.Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+` FROM match_results WHERE project_id = $1 ORDER BY rank ASC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMatchResults(rows)
}

func (r *PostgresMatchResultRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, minScore float64) ([]match.Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+` FROM match_results
		 WHERE candidate_id = $1 AND final_score >= $2
		 ORDER BY final_score DESC`,
		candidateID, minScore,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMatchResults(rows)
}

func collectMatchResults(rows database.Rows) ([]match.Result, error) {
	out := make([]match.Result, 0)
	for rows.Next() {
		m, err := scanMatchResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatchResult(row scanner) (match.Result, error) {
	var (
		m                match.Result
		gapsJSON         []byte
		explanationsJSON []byte
		mitigationsJSON  []byte
	)
	err := row.Scan(
		&m.ID, &m.CandidateID, &m.ProjectID,
		&m.RawScore, &m.FinalScore, &m.FairnessBonus,
		&m.TechnicalScore, &m.CommunicationScore, &m.LeadershipScore, &m.ExperienceScore,
		&gapsJSON, &explanationsJSON, &mitigationsJSON,
		&m.Rank, &m.AlgorithmVersion, &m.CalculatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return match.Result{}, ErrMatchNotFound
		}
		return match.Result{}, err
	}

	m.SkillGaps = make([]matching.SkillGap, 0)
	m.Explanations = make([]matching.Explanation, 0)
	m.BiasMitigations = make([]string, 0)
	if len(gapsJSON) > 0 {
		if err := json.Unmarshal(gapsJSON, &m.SkillGaps); err != nil {
			return match.Result{}, err
		}
	}
	if len(explanationsJSON) > 0 {
		if err := json.Unmarshal(explanationsJSON, &m.Explanations); err != nil {
			return match.Result{}, err
		}
	}
	if len(mitigationsJSON) > 0 {
		if err := json.Unmarshal(mitigationsJSON, &m.BiasMitigations); err != nil {
			return match.Result{}, err
		}
	}
	return m, nil
}
