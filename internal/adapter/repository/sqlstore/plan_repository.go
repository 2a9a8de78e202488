package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

// Dialect holds the statements that differ between SQL engines.
type Dialect struct {
	Name        string
	CreateTable string
	SelectQuery string
	UpsertQuery string
}

var Postgres = Dialect{
	Name: "postgres",
	CreateTable: `
	CREATE TABLE IF NOT EXISTS plan_snapshots (
		slot       VARCHAR(128) PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
	`,
	SelectQuery: `SELECT payload FROM plan_snapshots WHERE slot = $1`,
	UpsertQuery: `
	INSERT INTO plan_snapshots (slot, payload, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (slot) DO UPDATE
	SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`,
}

var MySQL = Dialect{
	Name: "mysql",
	CreateTable: `
	CREATE TABLE IF NOT EXISTS plan_snapshots (
		slot       VARCHAR(128) PRIMARY KEY,
		payload    LONGTEXT NOT NULL,
		updated_at DATETIME(3) NOT NULL
	)
	`,
	SelectQuery: `SELECT payload FROM plan_snapshots WHERE slot = ?`,
	UpsertQuery: `
	INSERT INTO plan_snapshots (slot, payload, updated_at)
	VALUES (?, ?, ?)
	ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at)
	`,
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case Postgres.Name:
		return Postgres, nil
	case MySQL.Name:
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("unsupported sql driver %q", driver)
}

// PlanRepository stores the snapshot as one row keyed by slot.
type PlanRepository struct {
	db      *sql.DB
	dialect Dialect
	slot    string
	now     func() time.Time
}

func NewPlanRepository(db *sql.DB, dialect Dialect, slot string) *PlanRepository {
	return &PlanRepository{db: db, dialect: dialect, slot: slot, now: time.Now}
}

func (r *PlanRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.CreateTable); err != nil {
		return fmt.Errorf("failed to create plan_snapshots: %w", err)
	}
	return nil
}

func (r *PlanRepository) Load(ctx context.Context) ([]domain.ConcertPlan, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, r.dialect.SelectQuery, r.slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", r.slot, err)
	}

	return domain.DecodeSnapshot([]byte(payload))
}

func (r *PlanRepository) Save(ctx context.Context, plans []domain.ConcertPlan) error {
	data, err := domain.EncodeSnapshot(plans)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.dialect.UpsertQuery, r.slot, string(data), r.now().UTC()); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", r.slot, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
