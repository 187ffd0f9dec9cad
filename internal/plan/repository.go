package plan

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, description string, price decimal.Decimal, durationDays int) (*Plan, error) {
	p := &Plan{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO plans (name, description, price, duration_days)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, duration_days, is_active, created_at, updated_at
	`, name, description, price, durationDays).StructScan(p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Plan, error) {
	p := &Plan{}
	err := r.db.GetContext(ctx, p, `
		SELECT id, name, description, price, duration_days, is_active, created_at, updated_at
		FROM plans
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) List(ctx context.Context, includeInactive bool) ([]Plan, error) {
	plans := []Plan{}
	query := `
		SELECT id, name, description, price, duration_days, is_active, created_at, updated_at
		FROM plans
	`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY price ASC`

	err := r.db.SelectContext(ctx, &plans, query)
	return plans, err
}

func (r *repository) Update(ctx context.Context, id int, name, description string) (*Plan, error) {
	p := &Plan{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE plans
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, description, price, duration_days, is_active, created_at, updated_at
	`, name, description, id).StructScan(p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE plans
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`, id)
	return err
}
