package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sales-plan/backend/internal/models"
)

// PlanRepo persists the full plan as one JSON row: update it if it exists,
// insert otherwise. There is never more than one row.
type PlanRepo struct {
	pool *pgxpool.Pool
}

func NewPlanRepo(pool *pgxpool.Pool) *PlanRepo {
	return &PlanRepo{pool: pool}
}

// Load returns the stored plan, or nil when nothing has been saved yet.
func (r *PlanRepo) Load(ctx context.Context) (*models.Plan, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM plans WHERE id = 1`).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plan models.Plan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, fmt.Errorf("malformed plan document: %w", err)
	}
	return &plan, nil
}

func (r *PlanRepo) Save(ctx context.Context, plan *models.Plan) error {
	doc, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO plans (id, doc) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, doc)
	return err
}

func (r *PlanRepo) Clear(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM plans WHERE id = 1`)
	return err
}
