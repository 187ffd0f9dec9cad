package member

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

type Repository interface {
	Create(ctx context.Context, gymID int, name, phone, email string) (*Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	ListByGym(ctx context.Context, gymID int) ([]Member, error)
	Update(ctx context.Context, id int, name, phone, email string) (*Member, error)

	LatestMembership(ctx context.Context, memberID int) (*Membership, error)
	LatestMemberships(ctx context.Context, gymID int) (map[int]*Membership, error)
	CreateMembership(ctx context.Context, memberID, planID int, renewalType billing.RenewalType, regularFees decimal.Decimal, ptFees *decimal.Decimal, startDate, endDate time.Time) (*Membership, error)
	ListMemberships(ctx context.Context, memberID int) ([]Membership, error)
}
