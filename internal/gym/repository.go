package gym

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

func (r *repository) CreateGym(ctx context.Context, ownerID int, name, city, address string) (*Gym, error) {
	g := &Gym{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO gyms (owner_id, name, city, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, name, city, address, created_at, updated_at
	`, ownerID, name, city, address).StructScan(g)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	g := &Gym{}
	err := r.db.GetContext(ctx, g, `
		SELECT id, owner_id, name, city, address, created_at, updated_at
		FROM gyms
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repository) ListGyms(ctx context.Context) ([]Gym, error) {
	gyms := []Gym{}
	err := r.db.SelectContext(ctx, &gyms, `
		SELECT id, owner_id, name, city, address, created_at, updated_at
		FROM gyms
		ORDER BY created_at DESC
	`)
	return gyms, err
}

func (r *repository) UpdateGym(ctx context.Context, id int, name, city, address string) (*Gym, error) {
	g := &Gym{}
	err := r.db.QueryRowxContext(ctx, `
		UPDATE gyms
		SET name = $1, city = $2, address = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, owner_id, name, city, address, created_at, updated_at
	`, name, city, address, id).StructScan(g)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// LatestPeriod returns the most recent subscription period of a gym, or
// sql.ErrNoRows when the gym never subscribed.
func (r *repository) LatestPeriod(ctx context.Context, gymID int) (*SubscriptionPeriod, error) {
	p := &SubscriptionPeriod{}
	err := r.db.GetContext(ctx, p, `
		SELECT id, gym_id, plan_id, renewal_type, final_fees, start_date, end_date, created_at
		FROM gym_subscriptions
		WHERE gym_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, gymID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LatestPeriods returns the most recent period per gym in one query, for
// listings.
func (r *repository) LatestPeriods(ctx context.Context) (map[int]*SubscriptionPeriod, error) {
	periods := []SubscriptionPeriod{}
	err := r.db.SelectContext(ctx, &periods, `
		SELECT DISTINCT ON (gym_id)
		       id, gym_id, plan_id, renewal_type, final_fees, start_date, end_date, created_at
		FROM gym_subscriptions
		ORDER BY gym_id, created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}

	byGym := make(map[int]*SubscriptionPeriod, len(periods))
	for i := range periods {
		byGym[periods[i].GymID] = &periods[i]
	}
	return byGym, nil
}

func (r *repository) CreatePeriod(
	ctx context.Context,
	gymID, planID int,
	renewalType billing.RenewalType,
	finalFees decimal.Decimal,
	startDate time.Time,
	endDate time.Time,
) (*SubscriptionPeriod, error) {
	p := &SubscriptionPeriod{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO gym_subscriptions (gym_id, plan_id, renewal_type, final_fees, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, gym_id, plan_id, renewal_type, final_fees, start_date, end_date, created_at
	`, gymID, planID, renewalType, finalFees, startDate, endDate).StructScan(p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) ListPeriods(ctx context.Context, gymID int) ([]SubscriptionPeriod, error) {
	periods := []SubscriptionPeriod{}
	err := r.db.SelectContext(ctx, &periods, `
		SELECT id, gym_id, plan_id, renewal_type, final_fees, start_date, end_date, created_at
		FROM gym_subscriptions
		WHERE gym_id = $1
		ORDER BY created_at DESC, id DESC
	`, gymID)
	return periods, err
}
