package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

type Repository interface {
	Create(ctx context.Context, memberID int, track billing.Track, amount decimal.Decimal, paidAt time.Time, note string) (*Record, error)
	GetByID(ctx context.Context, id int) (*Record, error)
	ListByMember(ctx context.Context, memberID int) ([]Record, error)
	Update(ctx context.Context, id int, amount decimal.Decimal, paidAt time.Time, note string) (*Record, error)
}
