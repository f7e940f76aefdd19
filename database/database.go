package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/AnnaCarter465/naija-tax/config"
)

var ErrNotFound = errors.New("not found")

type DB struct {
	sqlDB *sql.DB
	log   *zap.Logger
}

func NewDB(cfg config.DatabaseConfig, log *zap.Logger) (*DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &DB{sqlDB: db, log: log}, nil
}

func (db *DB) GetSQLDB() *sql.DB {
	return db.sqlDB
}

func (db *DB) Ping(ctx context.Context) error {
	return db.sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// Migrate creates the tables the service reads and writes if they are
// missing.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	db.log.Info("database schema ready", zap.Int("statements", len(schema)))
	return nil
}

var schema = []string{
	`
	CREATE TABLE IF NOT EXISTS statutory_deductions (
		user_id                   TEXT NOT NULL,
		tax_year                  INTEGER NOT NULL,
		pension                   NUMERIC(18, 2) NOT NULL DEFAULT 0,
		health_insurance          NUMERIC(18, 2) NOT NULL DEFAULT 0,
		housing_fund              NUMERIC(18, 2) NOT NULL DEFAULT 0,
		housing_loan_interest     NUMERIC(18, 2) NOT NULL DEFAULT 0,
		life_insurance            NUMERIC(18, 2) NOT NULL DEFAULT 0,
		rent_paid                 NUMERIC(18, 2) NOT NULL DEFAULT 0,
		employment_compensation   NUMERIC(18, 2) NOT NULL DEFAULT 0,
		gifts_received            NUMERIC(18, 2) NOT NULL DEFAULT 0,
		pension_benefits_received NUMERIC(18, 2) NOT NULL DEFAULT 0,
		updated_at                TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, tax_year)
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS capital_assets (
		id               UUID PRIMARY KEY,
		user_id          TEXT NOT NULL,
		name             TEXT NOT NULL,
		category         TEXT NOT NULL,
		cost             NUMERIC(18, 2) NOT NULL,
		acquisition_year INTEGER NOT NULL
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS records (
		id          UUID PRIMARY KEY,
		user_id     TEXT NOT NULL,
		kind        TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
		record_date DATE NOT NULL,
		amount      NUMERIC(18, 2) NOT NULL,
		category    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS vat_transactions (
		id          UUID PRIMARY KEY,
		user_id     TEXT NOT NULL,
		tx_date     DATE NOT NULL,
		direction   TEXT NOT NULL CHECK (direction IN ('output', 'input')),
		category    TEXT NOT NULL,
		amount      NUMERIC(18, 2) NOT NULL,
		vat_amount  NUMERIC(18, 2) NOT NULL DEFAULT 0,
		is_exempt   BOOLEAN NOT NULL DEFAULT false
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS wht_transactions (
		id             UUID PRIMARY KEY,
		user_id        TEXT NOT NULL,
		tx_date        DATE NOT NULL,
		payment_type   TEXT NOT NULL,
		recipient_type TEXT NOT NULL,
		recipient_name TEXT NOT NULL DEFAULT '',
		gross_amount   NUMERIC(18, 2) NOT NULL
	)
	`,
}
