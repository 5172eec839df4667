package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
)

// SchemaSeeder creates the tables when they do not exist yet. Statements
// are idempotent so the seeder can run on every boot.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS skills (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL,
			full_name TEXT NOT NULL,
			phone TEXT,
			gender TEXT,
			ethnicity TEXT,
			socioeconomic_status TEXT,
			years_experience INTEGER NOT NULL DEFAULT 0,
			education_level TEXT,
			education_field TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_blind_review BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidate_skill_details (
			id UUID PRIMARY KEY,
			candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
			skill_id UUID NOT NULL REFERENCES skills(id),
			proficiency_level INTEGER NOT NULL DEFAULT 0,
			years_experience DOUBLE PRECISION NOT NULL DEFAULT 0,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			UNIQUE (candidate_id, skill_id)
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			project_type TEXT NOT NULL,
			location TEXT,
			is_remote BOOLEAN NOT NULL DEFAULT FALSE,
			status TEXT NOT NULL DEFAULT 'active',
			weights JSONB NOT NULL DEFAULT '{}'::jsonb,
			fairness JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deadline TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS project_skills (
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			skill_id UUID NOT NULL REFERENCES skills(id),
			required_level INTEGER,
			weight DOUBLE PRECISION,
			PRIMARY KEY (project_id, skill_id)
		)`,
		`CREATE TABLE IF NOT EXISTS match_results (
			id UUID PRIMARY KEY,
			candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			raw_score DOUBLE PRECISION NOT NULL,
			final_score DOUBLE PRECISION NOT NULL,
			fairness_bonus DOUBLE PRECISION NOT NULL,
			technical_score DOUBLE PRECISION NOT NULL,
			communication_score DOUBLE PRECISION NOT NULL,
			leadership_score DOUBLE PRECISION NOT NULL,
			experience_score DOUBLE PRECISION NOT NULL,
			skill_gaps JSONB NOT NULL DEFAULT '[]'::jsonb,
			explanations JSONB NOT NULL DEFAULT '[]'::jsonb,
			bias_mitigations JSONB NOT NULL DEFAULT '[]'::jsonb,
			rank INTEGER NOT NULL,
			algorithm_version TEXT NOT NULL,
			calculated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_results_project ON match_results (project_id, rank)`,
		`CREATE INDEX IF NOT EXISTS idx_match_results_candidate ON match_results (candidate_id, final_score DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
