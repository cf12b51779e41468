package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvMa/arpas-backend/internal/logger"
)

// RunMigrations applies the schema statements in order. Every statement is
// idempotent, so running them on every startup is safe.
func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createProjectsTable,
		createItemsTable,
		createInstancesTable,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("migrations completed", "count", len(migrations))
	return nil
}

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT
);
`

const createItemsTable = `
CREATE TABLE IF NOT EXISTS items (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  model_data BYTEA
);

CREATE INDEX IF NOT EXISTS idx_items_name ON items(name);
CREATE INDEX IF NOT EXISTS idx_items_description ON items(description);
`

// project_id and item_id carry no foreign key constraints: references are
// validated when an instance is written, and deleting a project or item
// later leaves existing instances untouched.
const createInstancesTable = `
CREATE TABLE IF NOT EXISTS instances (
  id BIGSERIAL PRIMARY KEY,
  project_id BIGINT NOT NULL,
  item_id BIGINT NOT NULL,
  position_x DOUBLE PRECISION NOT NULL DEFAULT 0,
  position_y DOUBLE PRECISION NOT NULL DEFAULT 0,
  position_z DOUBLE PRECISION NOT NULL DEFAULT 0,
  rotation_x DOUBLE PRECISION NOT NULL DEFAULT 0,
  rotation_y DOUBLE PRECISION NOT NULL DEFAULT 0,
  rotation_z DOUBLE PRECISION NOT NULL DEFAULT 0,
  scale_x DOUBLE PRECISION NOT NULL DEFAULT 1,
  scale_y DOUBLE PRECISION NOT NULL DEFAULT 1,
  scale_z DOUBLE PRECISION NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_instances_project_id ON instances(project_id);
CREATE INDEX IF NOT EXISTS idx_instances_item_id ON instances(item_id);
`
