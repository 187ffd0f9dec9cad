package inquiry

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

func (r *repository) Create(ctx context.Context, gymID int, name, phone, email, message string) (*Inquiry, error) {
	inq := &Inquiry{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO inquiries (gym_id, name, phone, email, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, gym_id, name, phone, email, message, status, created_at, updated_at
	`, gymID, name, phone, email, message, StatusNew).StructScan(inq)
	if err != nil {
		return nil, err
	}
	return inq, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Inquiry, error) {
	inq := &Inquiry{}
	err := r.db.GetContext(ctx, inq, `
		SELECT id, gym_id, name, phone, email, message, status, created_at, updated_at
		FROM inquiries
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return inq, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Inquiry, error) {
	inquiries := []Inquiry{}
	err := r.db.SelectContext(ctx, &inquiries, `
		SELECT id, gym_id, name, phone, email, message, status, created_at, updated_at
		FROM inquiries
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`, gymID)
	return inquiries, err
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) (*Inquiry, error) {
	inq := &Inquiry{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE inquiries
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, gym_id, name, phone, email, message, status, created_at, updated_at
	`, status, id).StructScan(inq)
	if err != nil {
		return nil, err
	}
	return inq, nil
}
