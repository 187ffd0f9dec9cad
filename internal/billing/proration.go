package billing

import "github.com/shopspring/decimal"

// PlanTerms is the slice of a plan the calculator needs: what it costs and
// how long it runs. DurationDays must be positive; that invariant is
// enforced where plans are created, not here.
type PlanTerms struct {
	Price        decimal.Decimal
	DurationDays int
}

// DailyRate is the normalized per-day cost of the plan, used to compare
// plans of different lengths.
func (t PlanTerms) DailyRate() decimal.Decimal {
	return t.Price.Div(decimal.NewFromInt(int64(t.DurationDays)))
}

// Proration is the outcome of a mid-term plan change. Difference is the
// unsigned magnitude of the charge or credit, rounded to the nearest whole
// currency unit; IsUpgrade carries the direction (true = additional charge,
// false = credit).
type Proration struct {
	DaysRemaining    int             `json:"days_remaining"`
	CurrentPlanPrice decimal.Decimal `json:"current_plan_price"`
	NewPlanPrice     decimal.Decimal `json:"new_plan_price"`
	Difference       decimal.Decimal `json:"difference"`
	IsUpgrade        bool            `json:"is_upgrade"`
}

// ComputeProration prices a switch from current to next with daysRemaining
// left on the current term, using daily-rate arithmetic. Returns nil when
// there is nothing left to prorate (no prior plan, or the term has run
// out); the caller should treat the change as a fresh purchase instead.
func ComputeProration(current, next *PlanTerms, daysRemaining int) *Proration {
	if current == nil || daysRemaining <= 0 {
		return nil
	}

	currentRate := current.DailyRate()
	nextRate := next.DailyRate()

	diff := nextRate.Sub(currentRate).Mul(decimal.NewFromInt(int64(daysRemaining)))

	return &Proration{
		DaysRemaining:    daysRemaining,
		CurrentPlanPrice: current.Price,
		NewPlanPrice:     next.Price,
		Difference:       diff.Abs().Round(0),
		IsUpgrade:        nextRate.GreaterThan(currentRate),
	}
}
