package member

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

func (r *repository) Create(ctx context.Context, gymID int, name, phone, email string) (*Member, error) {
	m := &Member{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO members (gym_id, name, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, gym_id, name, phone, email, created_at, updated_at
	`, gymID, name, phone, email).StructScan(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	m := &Member{}
	err := r.db.GetContext(ctx, m, `
		SELECT id, gym_id, name, phone, email, created_at, updated_at
		FROM members
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) ListByGym(ctx context.Context, gymID int) ([]Member, error) {
	members := []Member{}
	err := r.db.SelectContext(ctx, &members, `
		SELECT id, gym_id, name, phone, email, created_at, updated_at
		FROM members
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`, gymID)
	return members, err
}

func (r *repository) Update(ctx context.Context, id int, name, phone, email string) (*Member, error) {
	m := &Member{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE members
		SET name = $1, phone = $2, email = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, gym_id, name, phone, email, created_at, updated_at
	`, name, phone, email, id).StructScan(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) LatestMembership(ctx context.Context, memberID int) (*Membership, error) {
	m := &Membership{}
	err := r.db.GetContext(ctx, m, `
		SELECT id, member_id, plan_id, renewal_type, regular_fees, pt_fees, start_date, end_date, created_at
		FROM memberships
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, memberID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) LatestMemberships(ctx context.Context, gymID int) (map[int]*Membership, error) {
	memberships := []Membership{}
	err := r.db.SelectContext(ctx, &memberships, `
		SELECT DISTINCT ON (ms.member_id)
		       ms.id, ms.member_id, ms.plan_id, ms.renewal_type, ms.regular_fees, ms.pt_fees,
		       ms.start_date, ms.end_date, ms.created_at
		FROM memberships ms
		JOIN members m ON m.id = ms.member_id
		WHERE m.gym_id = $1
		ORDER BY ms.member_id, ms.created_at DESC, ms.id DESC
	`, gymID)
	if err != nil {
		return nil, err
	}

	byMember := make(map[int]*Membership, len(memberships))
	for i := range memberships {
		byMember[memberships[i].MemberID] = &memberships[i]
	}
	return byMember, nil
}

func (r *repository) CreateMembership(
	ctx context.Context,
	memberID, planID int,
	renewalType billing.RenewalType,
	regularFees decimal.Decimal,
	ptFees *decimal.Decimal,
	startDate, endDate time.Time,
) (*Membership, error) {
	m := &Membership{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO memberships (member_id, plan_id, renewal_type, regular_fees, pt_fees, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, member_id, plan_id, renewal_type, regular_fees, pt_fees, start_date, end_date, created_at
	`, memberID, planID, renewalType, regularFees, ptFees, startDate, endDate).StructScan(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repository) ListMemberships(ctx context.Context, memberID int) ([]Membership, error) {
	memberships := []Membership{}
	err := r.db.SelectContext(ctx, &memberships, `
		SELECT id, member_id, plan_id, renewal_type, regular_fees, pt_fees, start_date, end_date, created_at
		FROM memberships
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`, memberID)
	return memberships, err
}
