package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, memberID int, track billing.Track, amount decimal.Decimal, paidAt time.Time, note string) (*Record, error) {
	rec := &Record{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO payments (member_id, track, amount, paid_at, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, member_id, track, amount, paid_at, note, created_at, updated_at
	`, memberID, track, amount, paidAt, note).StructScan(rec)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Record, error) {
	rec := &Record{}
	err := r.db.GetContext(ctx, rec, `
		SELECT id, member_id, track, amount, paid_at, note, created_at, updated_at
		FROM payments
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Record, error) {
	records := []Record{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, member_id, track, amount, paid_at, note, created_at, updated_at
		FROM payments
		WHERE member_id = $1
		ORDER BY paid_at DESC, id DESC
	`, memberID)
	return records, err
}

// Update amends amount, date and note. The member and track of a payment
// are fixed at creation; re-tagging would silently move money between
// ledgers.
func (r *repository) Update(ctx context.Context, id int, amount decimal.Decimal, paidAt time.Time, note string) (*Record, error) {
	rec := &Record{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE payments
		SET amount = $1, paid_at = $2, note = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, member_id, track, amount, paid_at, note, created_at, updated_at
	`, amount, paidAt, note, id).StructScan(rec)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
