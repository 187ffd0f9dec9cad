package gym

import (
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

type Gym struct {
	ID        int       `db:"id" json:"id"`
	OwnerID   int       `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	City      string    `db:"city" json:"city"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SubscriptionPeriod is one term of a gym's SaaS subscription. The history
// is append-only: renewing or changing plan creates a new row, the old one
// is never touched. FinalFees is the contracted amount for this term after
// any discount, fixed at creation.
type SubscriptionPeriod struct {
	ID          int                 `db:"id" json:"id"`
	GymID       int                 `db:"gym_id" json:"gym_id"`
	PlanID      int                 `db:"plan_id" json:"plan_id"`
	RenewalType billing.RenewalType `db:"renewal_type" json:"renewal_type"`
	FinalFees   decimal.Decimal     `db:"final_fees" json:"final_fees"`
	StartDate   time.Time           `db:"start_date" json:"start_date"`
	EndDate     *time.Time          `db:"end_date" json:"end_date"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
}

// BillingPeriod maps the record onto the shape the status resolver takes.
func (p *SubscriptionPeriod) BillingPeriod() *billing.Period {
	if p == nil {
		return nil
	}
	return &billing.Period{Start: p.StartDate, End: p.EndDate}
}

// GymWithStatus is a gym row plus its derived subscription state for the
// console listing.
type GymWithStatus struct {
	Gym
	Status        billing.Status `json:"status"`
	DaysRemaining *int           `json:"days_remaining"`
	PlanID        *int           `json:"plan_id,omitempty"`
}

type CreateGymRequest struct {
	OwnerID int    `json:"owner_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
}

type UpdateGymRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
}

type SubscribeRequest struct {
	PlanID   int              `json:"plan_id" binding:"required"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

type ChangePlanRequest struct {
	PlanID int `json:"plan_id" binding:"required"`
}

// PlanChangePreview is what the confirmation dialog shows before a change
// is submitted. Proration is nil when nothing remains on the current term;
// the change is then priced as a fresh purchase.
type PlanChangePreview struct {
	Proration     *billing.Proration `json:"proration"`
	FreshPurchase bool               `json:"fresh_purchase"`
}

// ChangePlanResponse returns the new period together with the proration
// that was applied to it.
type ChangePlanResponse struct {
	Period    *SubscriptionPeriod `json:"period"`
	Proration *billing.Proration  `json:"proration"`
}
