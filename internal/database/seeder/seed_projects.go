package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"skillmatch/internal/database"
	"skillmatch/internal/domain/matching"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects",
		"id", "title", "project_type", "status", "weights", "fairness"); err != nil {
		return err
	}

	weights, err := json.Marshal(matching.Weights{
		matching.WeightTechnical:     0.6,
		matching.WeightCommunication: 0.2,
		matching.WeightLeadership:    0.1,
		matching.WeightExperience:    0.1,
	})
	if err != nil {
		return err
	}
	fairness, err := json.Marshal(matching.DefaultFairnessConfig())
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	const title = "AI Research Intern"

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE title = $1)`, title).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO projects (id, title, description, project_type, status, weights, fairness)
		 VALUES (gen_random_uuid(), $1, $2, 'internship', 'active', $3, $4)`,
		title, "Research-focused internship", weights, fairness,
	)
	if err != nil {
		return err
	}

	requirements := []struct {
		Skill  string
		Level  int
		Weight float64
	}{
		{Skill: "Python", Level: 90, Weight: 1.5},
		{Skill: "Machine Learning", Level: 85, Weight: 2.0},
		{Skill: "Communication", Level: 70, Weight: 1.0},
	}

	for _, req := range requirements {
		_, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id, required_level, weight)
			 SELECT p.id, s.id, $1, $2
			 FROM projects p, skills s
			 WHERE p.title = $3 AND s.name = $4
			 ON CONFLICT (project_id, skill_id) DO NOTHING`,
			req.Level, req.Weight, title, req.Skill,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
