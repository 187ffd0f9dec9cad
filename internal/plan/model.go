package plan

import (
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

// Plan is immutable reference data: once a subscription period points at a
// plan, the plan's price and duration stay fixed. Plans are deactivated,
// never deleted.
type Plan struct {
	ID           int             `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Description  string          `db:"description" json:"description"`
	Price        decimal.Decimal `db:"price" json:"price"`
	DurationDays int             `db:"duration_days" json:"duration_days"`
	IsActive     bool            `db:"is_active" json:"is_active"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// Terms exposes the slice of the plan the billing calculator consumes.
func (p *Plan) Terms() *billing.PlanTerms {
	return &billing.PlanTerms{Price: p.Price, DurationDays: p.DurationDays}
}

type CreatePlanRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	DurationDays int             `json:"duration_days" binding:"required,min=1"`
}

type UpdatePlanRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
