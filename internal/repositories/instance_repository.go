package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvMa/arpas-backend/internal/models"
)

type InstanceRepository struct {
	pool *pgxpool.Pool
}

func NewInstanceRepository(pool *pgxpool.Pool) *InstanceRepository {
	return &InstanceRepository{pool: pool}
}

func (r *InstanceRepository) Create(instance *models.Instance) error {
	ctx := context.Background()

	query := `
		INSERT INTO instances (
			project_id, item_id,
			position_x, position_y, position_z,
			rotation_x, rotation_y, rotation_z,
			scale_x, scale_y, scale_z
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		instance.ProjectID,
		instance.ItemID,
		instance.PositionX,
		instance.PositionY,
		instance.PositionZ,
		instance.RotationX,
		instance.RotationY,
		instance.RotationZ,
		instance.ScaleX,
		instance.ScaleY,
		instance.ScaleZ,
	).Scan(&instance.ID)
}

// GetByID returns (nil, nil) when no instance has the given id.
func (r *InstanceRepository) GetByID(id int64) (*models.Instance, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_id, item_id,
			position_x, position_y, position_z,
			rotation_x, rotation_y, rotation_z,
			scale_x, scale_y, scale_z
		FROM instances WHERE id = $1
	`

	var instance models.Instance
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&instance.ID,
		&instance.ProjectID,
		&instance.ItemID,
		&instance.PositionX,
		&instance.PositionY,
		&instance.PositionZ,
		&instance.RotationX,
		&instance.RotationY,
		&instance.RotationZ,
		&instance.ScaleX,
		&instance.ScaleY,
		&instance.ScaleZ,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &instance, nil
}

func (r *InstanceRepository) GetAll() ([]models.Instance, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_id, item_id,
			position_x, position_y, position_z,
			rotation_x, rotation_y, rotation_z,
			scale_x, scale_y, scale_z
		FROM instances
		ORDER BY id
	`

	return r.queryInstances(ctx, query)
}

// GetByProjectID lists the instances placed in one project, oldest first.
func (r *InstanceRepository) GetByProjectID(projectID int64) ([]models.Instance, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_id, item_id,
			position_x, position_y, position_z,
			rotation_x, rotation_y, rotation_z,
			scale_x, scale_y, scale_z
		FROM instances WHERE project_id = $1
		ORDER BY id
	`

	return r.queryInstances(ctx, query, projectID)
}

func (r *InstanceRepository) queryInstances(ctx context.Context, query string, args ...any) ([]models.Instance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instances := make([]models.Instance, 0)
	for rows.Next() {
		var instance models.Instance
		err := rows.Scan(
			&instance.ID,
			&instance.ProjectID,
			&instance.ItemID,
			&instance.PositionX,
			&instance.PositionY,
			&instance.PositionZ,
			&instance.RotationX,
			&instance.RotationY,
			&instance.RotationZ,
			&instance.ScaleX,
			&instance.ScaleY,
			&instance.ScaleZ,
		)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}

	return instances, rows.Err()
}

// Update replaces every mutable column of the instance row.
func (r *InstanceRepository) Update(instance *models.Instance) error {
	ctx := context.Background()

	query := `
		UPDATE instances SET
			project_id = $2, item_id = $3,
			position_x = $4, position_y = $5, position_z = $6,
			rotation_x = $7, rotation_y = $8, rotation_z = $9,
			scale_x = $10, scale_y = $11, scale_z = $12
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		instance.ID,
		instance.ProjectID,
		instance.ItemID,
		instance.PositionX,
		instance.PositionY,
		instance.PositionZ,
		instance.RotationX,
		instance.RotationY,
		instance.RotationZ,
		instance.ScaleX,
		instance.ScaleY,
		instance.ScaleZ,
	)

	return err
}

func (r *InstanceRepository) Delete(id int64) error {
	ctx := context.Background()

	query := `DELETE FROM instances WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
