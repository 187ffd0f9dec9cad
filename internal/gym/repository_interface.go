package gym

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

type Repository interface {
	CreateGym(ctx context.Context, ownerID int, name, city, address string) (*Gym, error)
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	ListGyms(ctx context.Context) ([]Gym, error)
	UpdateGym(ctx context.Context, id int, name, city, address string) (*Gym, error)

	LatestPeriod(ctx context.Context, gymID int) (*SubscriptionPeriod, error)
	LatestPeriods(ctx context.Context) (map[int]*SubscriptionPeriod, error)
	CreatePeriod(ctx context.Context, gymID, planID int, renewalType billing.RenewalType, finalFees decimal.Decimal, startDate, endDate time.Time) (*SubscriptionPeriod, error)
	ListPeriods(ctx context.Context, gymID int) ([]SubscriptionPeriod, error)
}
