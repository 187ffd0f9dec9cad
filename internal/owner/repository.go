package owner

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

func (r *repository) Create(ctx context.Context, name, email, phone string) (*Owner, error) {
	o := &Owner{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO owners (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, phone, created_at, updated_at
	`, name, email, phone).StructScan(o)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Owner, error) {
	o := &Owner{}
	err := r.db.GetContext(ctx, o, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM owners
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) List(ctx context.Context) ([]Owner, error) {
	owners := []Owner{}
	err := r.db.SelectContext(ctx, &owners, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM owners
		ORDER BY created_at DESC
	`)
	return owners, err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (SELECT 1 FROM owners WHERE email = $1)
	`, email)
	return exists, err
}

func (r *repository) Update(ctx context.Context, id int, name, phone string) (*Owner, error) {
	o := &Owner{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE owners
		SET name = $1, phone = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, email, phone, created_at, updated_at
	`, name, phone, id).StructScan(o)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	return err
}
