package seeder

import (
	"context"
	"fmt"

	"skillmatch/internal/database"
	"skillmatch/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "description", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name        string
		Category    string
		Description string
	}{
		{Name: "Python", Category: skill.CategoryTechnical, Description: "Programming language"},
		{Name: "Machine Learning", Category: skill.CategoryTechnical, Description: "ML algorithms and frameworks"},
		{Name: "Data Analysis", Category: skill.CategoryTechnical, Description: "Statistical analysis"},
		{Name: "Communication", Category: skill.CategorySoft, Description: "Verbal and written communication"},
		{Name: "Leadership", Category: skill.CategorySoft, Description: "Team leadership"},
		{Name: "SQL", Category: skill.CategoryTechnical, Description: "Database querying"},
		{Name: "Cloud Computing", Category: skill.CategoryTechnical, Description: "AWS/Azure/GCP"},
		{Name: "Statistics", Category: skill.CategoryTechnical, Description: "Statistical methods"},
		{Name: "Project Management", Category: skill.CategorySoft, Description: "Project planning"},
		{Name: "Deep Learning", Category: skill.CategoryTechnical, Description: "Neural networks"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category, description)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Category, it.Description,
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
