package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	queryUpsertState = `INSERT INTO console_state (key, value, updated_at)
		VALUES (:key, :value, :updated_at)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	queryGetState = `SELECT value FROM console_state WHERE key = :key`

	queryDeleteState = `DELETE FROM console_state WHERE key = :key`
)

type postgresAdapter struct {
	db *sqlx.DB
}

func NewPostgres() (Adapter, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSL_MODE"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logrus.Errorf("Failed to connect to Postgres: %v", err)
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &postgresAdapter{db: db}, nil
}

func (p *postgresAdapter) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sqlx.Named(queryGetState, map[string]interface{}{"key": key})
	if err != nil {
		return "", err
	}
	query = p.db.Rebind(query)

	var value string
	if err := p.db.QueryRowxContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		logrus.Errorf("Database error reading key %s: %v", key, err)
		return "", err
	}
	return value, nil
}

func (p *postgresAdapter) Set(ctx context.Context, key string, value string) error {
	argsKV := map[string]interface{}{
		"key":        key,
		"value":      value,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertState, argsKV)
	if err != nil {
		return err
	}
	query = p.db.Rebind(query)

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		logrus.Errorf("Database error writing key %s: %v", key, err)
		return err
	}
	return nil
}

func (p *postgresAdapter) Delete(ctx context.Context, key string) error {
	query, args, err := sqlx.Named(queryDeleteState, map[string]interface{}{"key": key})
	if err != nil {
		return err
	}
	query = p.db.Rebind(query)

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		logrus.Errorf("Database error deleting key %s: %v", key, err)
		return err
	}
	return nil
}

func (p *postgresAdapter) Close() error {
	return p.db.Close()
}
