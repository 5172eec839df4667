package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skillmatch/internal/database"
	"skillmatch/internal/domain/candidate"
	"skillmatch/internal/domain/matching"
)

var (
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrCandidateEmailInUse = errors.New("email already registered")
	ErrProficiencyNotFound = errors.New("proficiency not found")
)

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	GetByEmail(ctx context.Context, email string) (candidate.Candidate, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// ListActive returns active candidates with proficiencies resolved. A
	// non-empty ids slice restricts the result to that subset.
	ListActive(ctx context.Context, ids []uuid.UUID) ([]candidate.Candidate, error)

	UpsertProficiency(ctx context.Context, p candidate.Proficiency) (candidate.Proficiency, error)
	DeleteProficiency(ctx context.Context, candidateID, skillID uuid.UUID) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, email, hashed_password, full_name, COALESCE(phone, ''),
	gender, ethnicity, socioeconomic_status,
	COALESCE(years_experience, 0), COALESCE(education_level, ''), COALESCE(education_field, ''),
	is_active, is_blind_review, created_at, updated_at`

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	taken, err := r.EmailExists(ctx, c.Email)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if taken {
		return candidate.Candidate{}, ErrCandidateEmailInUse
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO candidates
		 (id, email, hashed_password, full_name, phone,
		  gender, ethnicity, socioeconomic_status,
		  years_experience, education_level, education_field,
		  is_active, is_blind_review, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		c.ID, c.Email, c.HashedPassword, c.FullName, c.Phone,
		demographicValue((*string)(c.Gender)), demographicValue((*string)(c.Ethnicity)), demographicValue((*string)(c.SocioeconomicStatus)),
		c.YearsExperience, c.EducationLevel, c.EducationField,
		c.IsActive, c.IsBlindReview, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)

	c, err := scanCandidate(row)
	if err != nil {
		return candidate.Candidate{}, err
	}

	profs, err := r.proficienciesFor(ctx, []uuid.UUID{c.ID})
	if err != nil {
		return candidate.Candidate{}, err
	}
	c.Proficiencies = profs[c.ID]
	return c, nil
}

func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE email = $1`, email)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	c.UpdatedAt = time.Now().UTC()

	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE candidates
		 SET full_name = $1, phone = $2,
		     gender = $3, ethnicity = $4, socioeconomic_status = $5,
		     years_experience = $6, education_level = $7, education_field = $8,
		     is_active = $9, is_blind_review = $10, updated_at = $11
		 WHERE id = $12`,
		c.FullName, c.Phone,
		demographicValue((*string)(c.Gender)), demographicValue((*string)(c.Ethnicity)), demographicValue((*string)(c.SocioeconomicStatus)),
		c.YearsExperience, c.EducationLevel, c.EducationField,
		c.IsActive, c.IsBlindReview, c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if rowsAffected == 0 {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	return r.GetByID(ctx, c.ID)
}

func (r *PostgresCandidateRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE candidates SET is_active = FALSE, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) ListActive(ctx context.Context, ids []uuid.UUID) ([]candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE is_active = TRUE`
	args := []any{}
	if len(ids) > 0 {
		query += ` AND id = ANY($1)`
		args = append(args, ids)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	idx := make([]uuid.UUID, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		idx = append(idx, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	profs, err := r.proficienciesFor(ctx, idx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Proficiencies = profs[out[i].ID]
	}
	return out, nil
}

func (r *PostgresCandidateRepository) UpsertProficiency(ctx context.Context, p candidate.Proficiency) (candidate.Proficiency, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_skill_details
		 (id, candidate_id, skill_id, proficiency_level, years_experience, verified)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (candidate_id, skill_id)
		 DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level,
		               years_experience = EXCLUDED.years_experience,
		               verified = EXCLUDED.verified`,
		p.ID, p.CandidateID, p.SkillID, p.ProficiencyLevel, p.YearsExperience, p.Verified,
	)
	if err != nil {
		return candidate.Proficiency{}, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT csd.id, csd.candidate_id, csd.skill_id, s.name,
		        COALESCE(csd.proficiency_level, 0), COALESCE(csd.years_experience, 0), csd.verified
		 FROM candidate_skill_details csd
		 JOIN skills s ON s.id = csd.skill_id
		 WHERE csd.candidate_id = $1 AND csd.skill_id = $2`,
		p.CandidateID, p.SkillID,
	)

	var saved candidate.Proficiency
	if err := row.Scan(&saved.ID, &saved.CandidateID, &saved.SkillID, &saved.SkillName,
		&saved.ProficiencyLevel, &saved.YearsExperience, &saved.Verified); err != nil {
		return candidate.Proficiency{}, err
	}
	return saved, nil
}

func (r *PostgresCandidateRepository) DeleteProficiency(ctx context.Context, candidateID, skillID uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM candidate_skill_details WHERE candidate_id = $1 AND skill_id = $2`,
		candidateID, skillID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProficiencyNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) proficienciesFor(ctx context.Context, candidateIDs []uuid.UUID) (map[uuid.UUID][]candidate.Proficiency, error) {
	rows, err := r.db.Query(ctx,
		`SELECT csd.id, csd.candidate_id, csd.skill_id, s.name,
		        COALESCE(csd.proficiency_level, 0), COALESCE(csd.years_experience, 0), csd.verified
		 FROM candidate_skill_details csd
		 JOIN skills s ON s.id = csd.skill_id
		 WHERE csd.candidate_id = ANY($1)
		 ORDER BY s.name ASC`,
		candidateIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]candidate.Proficiency, len(candidateIDs))
	for rows.Next() {
		var p candidate.Proficiency
		if err := rows.Scan(&p.ID, &p.CandidateID, &p.SkillID, &p.SkillName,
			&p.ProficiencyLevel, &p.YearsExperience, &p.Verified); err != nil {
			return nil, err
		}
		out[p.CandidateID] = append(out[p.CandidateID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row scanner) (candidate.Candidate, error) {
	var (
		c         candidate.Candidate
		gender    *string
		ethnicity *string
		ses       *string
	)
	err := row.Scan(
		&c.ID, &c.Email, &c.HashedPassword, &c.FullName, &c.Phone,
		&gender, &ethnicity, &ses,
		&c.YearsExperience, &c.EducationLevel, &c.EducationField,
		&c.IsActive, &c.IsBlindReview, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}

	if gender != nil {
		g := matching.Gender(*gender)
		c.Gender = &g
	}
	if ethnicity != nil {
		e := matching.Ethnicity(*ethnicity)
		c.Ethnicity = &e
	}
	if ses != nil {
		s := matching.SocioeconomicStatus(*ses)
		c.SocioeconomicStatus = &s
	}
	return c, nil
}

func demographicValue(v *string) any {
	if v == nil || *v == "" {
		return nil
	}
	return *v
}
