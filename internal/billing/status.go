// Package billing holds the pure derivation logic the rest of the service is
// built around: subscription status resolution, plan-change proration and
// payment-ledger aggregation. Nothing in here touches the database or the
// clock; callers pass records and an explicit "now" and get derived values
// back, so one snapshot of time can be shared across a whole listing.
package billing

import "time"

type Status string

const (
	StatusNew          Status = "NEW"
	StatusActive       Status = "ACTIVE"
	StatusExpiringSoon Status = "EXPIRING_SOON"
	StatusExpired      Status = "EXPIRED"
)

// DefaultExpiringSoonDays is the threshold below which an active
// subscription is reported as expiring soon. Inclusive at the boundary.
const DefaultExpiringSoonDays = 7

// Period is one subscription term. End is nil while the subject has never
// completed a purchase (a brand-new record with no term attached).
type Period struct {
	Start time.Time
	End   *time.Time
}

// Resolution is the derived lifecycle state of a period. DaysRemaining is
// nil for StatusNew and 0 for StatusExpired; it is never negative.
type Resolution struct {
	Status        Status `json:"status"`
	DaysRemaining *int   `json:"days_remaining"`
}

// ResolveStatus derives the lifecycle status of a period at the given time.
// Comparisons are date-only: a period ending today reports zero days
// remaining and EXPIRING_SOON, not EXPIRED, regardless of time of day.
func ResolveStatus(p *Period, now time.Time, thresholdDays int) Resolution {
	if p == nil || p.End == nil {
		return Resolution{Status: StatusNew}
	}

	days := daysBetween(now, *p.End)
	if days < 0 {
		zero := 0
		return Resolution{Status: StatusExpired, DaysRemaining: &zero}
	}

	d := days
	if days <= thresholdDays {
		return Resolution{Status: StatusExpiringSoon, DaysRemaining: &d}
	}
	return Resolution{Status: StatusActive, DaysRemaining: &d}
}

// ClassifyRenewal reports whether a new period is the subject's first.
// Display-only; the stored RenewalType on a period additionally
// distinguishes renewals from plan changes and is set by the caller
// when the period is created.
func ClassifyRenewal(hasPrior bool) RenewalType {
	if hasPrior {
		return RenewalRenewed
	}
	return RenewalNew
}

// RenewalType classifies how a period came to exist relative to its
// predecessor.
type RenewalType string

const (
	RenewalNew       RenewalType = "NEW"
	RenewalRenewed   RenewalType = "RENEWAL"
	RenewalUpgrade   RenewalType = "UPGRADE"
	RenewalDowngrade RenewalType = "DOWNGRADE"
)

// daysBetween counts whole calendar days from a to b, ignoring time of day.
// Negative when b's date is before a's.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
