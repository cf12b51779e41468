package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvMa/arpas-backend/internal/models"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(item *models.Item) error {
	ctx := context.Background()

	query := `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Description,
	).Scan(&item.ID)
}

// GetByID returns (nil, nil) when no item has the given id. The binary
// payload stays in the database; only its presence is reported.
func (r *ItemRepository) GetByID(id int64) (*models.Item, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, description, model_data IS NOT NULL
		FROM items WHERE id = $1
	`

	var item models.Item
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.HasModel,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepository) GetAll() ([]models.Item, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, description, model_data IS NOT NULL
		FROM items
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.HasModel,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *ItemRepository) Update(item *models.Item) error {
	ctx := context.Background()

	query := `
		UPDATE items SET
			name = $2, description = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
	)

	return err
}

func (r *ItemRepository) Delete(id int64) error {
	ctx := context.Background()

	query := `DELETE FROM items WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// GetModelData returns the stored binary payload. The result is nil both
// when the item is missing and when it has no payload; callers resolve the
// difference with GetByID.
func (r *ItemRepository) GetModelData(id int64) ([]byte, error) {
	ctx := context.Background()

	query := `SELECT model_data FROM items WHERE id = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return data, nil
}

func (r *ItemRepository) SetModelData(id int64, data []byte) error {
	ctx := context.Background()

	query := `UPDATE items SET model_data = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, data)
	return err
}

func (r *ItemRepository) ClearModelData(id int64) error {
	ctx := context.Background()

	query := `UPDATE items SET model_data = NULL WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
