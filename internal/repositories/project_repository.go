package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvMa/arpas-backend/internal/models"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create inserts the project and fills in its generated ID. A background
// context keeps the write running even if the caller's request is gone.
func (r *ProjectRepository) Create(project *models.Project) error {
	ctx := context.Background()

	query := `
		INSERT INTO projects (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		project.Name,
		project.Description,
	).Scan(&project.ID)
}

// GetByID returns (nil, nil) when no project has the given id.
func (r *ProjectRepository) GetByID(id int64) (*models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, description
		FROM projects WHERE id = $1
	`

	var project models.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, description
		FROM projects
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) Update(project *models.Project) error {
	ctx := context.Background()

	query := `
		UPDATE projects SET
			name = $2, description = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
	)

	return err
}

func (r *ProjectRepository) Delete(id int64) error {
	ctx := context.Background()

	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
