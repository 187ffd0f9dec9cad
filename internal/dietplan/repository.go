package dietplan

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, memberID int, title, content string) (*DietPlan, error) {
	dp := &DietPlan{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO diet_plans (member_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, member_id, title, content, created_at, updated_at
	`, memberID, title, content).StructScan(dp)
	if err != nil {
		return nil, err
	}
	return dp, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*DietPlan, error) {
	dp := &DietPlan{}
	err := r.db.GetContext(ctx, dp, `
		SELECT id, member_id, title, content, created_at, updated_at
		FROM diet_plans
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return dp, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]DietPlan, error) {
	plans := []DietPlan{}
	err := r.db.SelectContext(ctx, &plans, `
		SELECT id, member_id, title, content, created_at, updated_at
		FROM diet_plans
		WHERE member_id = $1
		ORDER BY created_at DESC
	`, memberID)
	return plans, err
}

func (r *repository) Update(ctx context.Context, id int, title, content string) (*DietPlan, error) {
	dp := &DietPlan{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE diet_plans
		SET title = $1, content = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, member_id, title, content, created_at, updated_at
	`, title, content, id).StructScan(dp)
	if err != nil {
		return nil, err
	}
	return dp, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diet_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDietPlanNotFound
	}
	return nil
}
