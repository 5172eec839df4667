package seeder

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"skillmatch/internal/database"
)

// demoPassword is shared by the seeded demo profiles; real accounts are
// created through the registration endpoint.
const demoPassword = "changeme"

type CandidatesSeeder struct{}

func (CandidatesSeeder) Name() string { return "candidates" }

func (CandidatesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "candidates",
		"id", "email", "hashed_password", "full_name",
		"gender", "ethnicity", "socioeconomic_status", "years_experience"); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	items := []struct {
		Name      string
		Email     string
		Gender    string
		Ethnicity string
		SES       string
		Skills    []struct {
			Name  string
			Level int
		}
	}{
		{
			Name: "Alex Chen", Email: "alex@example.com",
			Gender: "non_binary", Ethnicity: "asian", SES: "medium",
			Skills: []struct {
				Name  string
				Level int
			}{{"Python", 95}, {"Machine Learning", 88}, {"Communication", 78}},
		},
		{
			Name: "Maria Garcia", Email: "maria@example.com",
			Gender: "female", Ethnicity: "hispanic", SES: "low",
			Skills: []struct {
				Name  string
				Level int
			}{{"Python", 82}, {"Machine Learning", 85}, {"Communication", 92}},
		},
		{
			Name: "James Wilson", Email: "james@example.com",
			Gender: "male", Ethnicity: "caucasian", SES: "high",
			Skills: []struct {
				Name  string
				Level int
			}{{"Python", 88}, {"Machine Learning", 75}, {"Communication", 85}},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO candidates
			 (id, email, hashed_password, full_name, gender, ethnicity, socioeconomic_status, years_experience)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 3)
			 ON CONFLICT (email) DO NOTHING`,
			it.Email, string(hashed), it.Name, it.Gender, it.Ethnicity, it.SES,
		)
		if err != nil {
			return err
		}

		for _, s := range it.Skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO candidate_skill_details (id, candidate_id, skill_id, proficiency_level)
				 SELECT gen_random_uuid(), c.id, s.id, $1
				 FROM candidates c, skills s
				 WHERE c.email = $2 AND s.name = $3
				 ON CONFLICT (candidate_id, skill_id) DO NOTHING`,
				s.Level, it.Email, s.Name,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
