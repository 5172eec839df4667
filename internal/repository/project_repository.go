package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skillmatch/internal/database"
	"skillmatch/internal/domain/matching"
	"skillmatch/internal/domain/project"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) (project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	List(ctx context.Context, status string) ([]project.Project, error)
	Update(ctx context.Context, p project.Project) (project.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ReplaceRequirements(ctx context.Context, projectID uuid.UUID, reqs []project.Requirement) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, title, COALESCE(description, ''), project_type,
	COALESCE(location, ''), is_remote, status, weights, fairness, created_at, deadline`

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Status == "" {
		p.Status = project.StatusActive
	}

	weightsJSON, fairnessJSON, err := marshalProjectConfig(p)
	if err != nil {
		return project.Project{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return project.Project{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO projects
		 (id, title, description, project_type, location, is_remote, status, weights, fairness, created_at, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Title, p.Description, string(p.Type), p.Location, p.IsRemote, p.Status,
		weightsJSON, fairnessJSON, p.CreatedAt, p.Deadline,
	)
	if err != nil {
		return project.Project{}, err
	}

	if err := insertRequirements(ctx, tx, p.ID, p.Requirements); err != nil {
		return project.Project{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return project.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)

	p, err := scanProject(row)
	if err != nil {
		return project.Project{}, err
	}

	reqs, err := r.requirementsFor(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return project.Project{}, err
	}
	p.Requirements = reqs[p.ID]
	return p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context, status string) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	idx := make([]uuid.UUID, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
		idx = append(idx, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	reqs, err := r.requirementsFor(ctx, idx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Requirements = reqs[out[i].ID]
	}
	return out, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	weightsJSON, fairnessJSON, err := marshalProjectConfig(p)
	if err != nil {
		return project.Project{}, err
	}

	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, project_type = $3, location = $4,
		     is_remote = $5, status = $6, weights = $7, fairness = $8, deadline = $9
		 WHERE id = $10`,
		p.Title, p.Description, string(p.Type), p.Location,
		p.IsRemote, p.Status, weightsJSON, fairnessJSON, p.Deadline,
		p.ID,
	)
	if err != nil {
		return project.Project{}, err
	}
	if rowsAffected == 0 {
		return project.Project{}, ErrProjectNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE project_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM match_results WHERE project_id = $1`, id); err != nil {
		return err
	}

	rowsAffected, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}
	return tx.Commit(ctx)
}

func (r *PostgresProjectRepository) ReplaceRequirements(ctx context.Context, projectID uuid.UUID, reqs []project.Requirement) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE project_id = $1`, projectID); err != nil {
		return err
	}
	if err := insertRequirements(ctx, tx, projectID, reqs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresProjectRepository) requirementsFor(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID][]project.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ps.project_id, ps.skill_id, s.name, ps.required_level, ps.weight
		 FROM project_skills ps
		 JOIN skills s ON s.id = ps.skill_id
		 WHERE ps.project_id = ANY($1)
		 ORDER BY s.name ASC`,
		projectIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]project.Requirement, len(projectIDs))
	for rows.Next() {
		var req project.Requirement
		if err := rows.Scan(&req.ProjectID, &req.SkillID, &req.SkillName, &req.RequiredLevel, &req.Weight); err != nil {
			return nil, err
		}
		out[req.ProjectID] = append(out[req.ProjectID], req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func insertRequirements(ctx context.Context, tx database.Tx, projectID uuid.UUID, reqs []project.Requirement) error {
	for _, req := range reqs {
		_, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id, required_level, weight)
			 VALUES ($1, $2, $3, $4)`,
			projectID, req.SkillID, req.RequiredLevel, req.Weight,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func marshalProjectConfig(p project.Project) ([]byte, []byte, error) {
	weights := p.Weights
	if weights == nil {
		weights = matching.Weights{}
	}
	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return nil, nil, err
	}
	fairnessJSON, err := json.Marshal(p.Fairness)
	if err != nil {
		return nil, nil, err
	}
	return weightsJSON, fairnessJSON, nil
}

func scanProject(row scanner) (project.Project, error) {
	var (
		p            project.Project
		projectType  string
		weightsJSON  []byte
		fairnessJSON []byte
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &projectType,
		&p.Location, &p.IsRemote, &p.Status, &weightsJSON, &fairnessJSON, &p.CreatedAt, &p.Deadline,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}

	p.Type = project.Type(projectType)
	if len(weightsJSON) > 0 {
		if err := json.Unmarshal(weightsJSON, &p.Weights); err != nil {
			return project.Project{}, err
		}
	}
	if len(fairnessJSON) > 0 {
		if err := json.Unmarshal(fairnessJSON, &p.Fairness); err != nil {
			return project.Project{}, err
		}
	}
	return p, nil
}
