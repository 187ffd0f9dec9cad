package plan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, name, description string, price decimal.Decimal, durationDays int) (*Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	List(ctx context.Context, includeInactive bool) ([]Plan, error)
	Update(ctx context.Context, id int, name, description string) (*Plan, error)
	Deactivate(ctx context.Context, id int) error
}
