package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarvMa/arpas-backend/internal/config"
	"github.com/MarvMa/arpas-backend/internal/logger"
)

// EnsureDatabaseExists connects to the maintenance database and creates the
// configured database when it is missing, so a fresh deployment needs no
// manual setup step.
func EnsureDatabaseExists(cfg *config.Config) error {
	userInfo := url.UserPassword(cfg.DB.Username, cfg.DB.Password)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/postgres?sslmode=%s",
		userInfo.String(),
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.DB.Database).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		logger.Debug("database already exists", "database", cfg.DB.Database)
		return nil
	}

	logger.Info("creating database", "database", cfg.DB.Database)

	// CREATE DATABASE cannot take bind parameters, so the name is quoted
	// through pgx's identifier sanitizer instead.
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.DB.Database}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

// Connect opens the pgx connection pool the whole application shares and
// verifies it with a ping before returning.
func Connect(cfg *config.Config) (*pgxpool.Pool, error) {
	userInfo := url.UserPassword(cfg.DB.Username, cfg.DB.Password)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		userInfo.String(),
		cfg.DB.Host,
		cfg.DB.Port,
		url.PathEscape(cfg.DB.Database),
		cfg.DB.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = cfg.DB.MaxConns
	poolConfig.MinConns = cfg.DB.MinConns
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection pool established",
		"host", cfg.DB.Host,
		"database", cfg.DB.Database,
		"max_conns", cfg.DB.MaxConns,
	)
	return pool, nil
}
