package member

import (
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

type Member struct {
	ID        int       `db:"id" json:"id"`
	GymID     int       `db:"gym_id" json:"gym_id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Membership is one term of a member's plan assignment. RegularFees and
// PTFees are the final contracted amounts per track, fixed after discount
// at assignment time; PTFees is nil when no personal-training add-on was
// sold. Rows are append-only.
type Membership struct {
	ID          int                 `db:"id" json:"id"`
	MemberID    int                 `db:"member_id" json:"member_id"`
	PlanID      int                 `db:"plan_id" json:"plan_id"`
	RenewalType billing.RenewalType `db:"renewal_type" json:"renewal_type"`
	RegularFees decimal.Decimal     `db:"regular_fees" json:"regular_fees"`
	PTFees      *decimal.Decimal    `db:"pt_fees" json:"pt_fees,omitempty"`
	StartDate   time.Time           `db:"start_date" json:"start_date"`
	EndDate     *time.Time          `db:"end_date" json:"end_date"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
}

func (m *Membership) BillingPeriod() *billing.Period {
	if m == nil {
		return nil
	}
	return &billing.Period{Start: m.StartDate, End: m.EndDate}
}

// FeeTotals exposes the membership's contracted amounts as ledger fee
// totals, one per track the member actually carries.
func (m *Membership) FeeTotals() []billing.FeeTotal {
	if m == nil {
		return nil
	}
	totals := []billing.FeeTotal{
		{Track: billing.TrackRegular, FinalFees: m.RegularFees},
	}
	if m.PTFees != nil {
		totals = append(totals, billing.FeeTotal{Track: billing.TrackPT, FinalFees: *m.PTFees})
	}
	return totals
}

type MemberWithStatus struct {
	Member
	Status        billing.Status `json:"status"`
	DaysRemaining *int           `json:"days_remaining"`
	PlanID        *int           `json:"plan_id,omitempty"`
}

type CreateMemberRequest struct {
	GymID int    `json:"gym_id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

type UpdateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

type AssignMembershipRequest struct {
	PlanID   int              `json:"plan_id" binding:"required"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
	PTFees   *decimal.Decimal `json:"pt_fees,omitempty"`
}
