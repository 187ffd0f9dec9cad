package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Track is one of the two independent fee/payment ledgers a member can
// carry: the regular membership and the personal-training add-on.
type Track string

const (
	TrackRegular Track = "REGULAR"
	TrackPT      Track = "PT"
)

// Entry is one append-only payment record. Entries are never mutated after
// creation; amending a payment means re-validating its replacement amount
// with the old entry excluded from the baseline.
type Entry struct {
	ID     int
	Track  Track
	Amount decimal.Decimal
	PaidAt time.Time
}

// FeeTotal is the contractually fixed amount owed for a track, set once at
// purchase/renewal time after any discount.
type FeeTotal struct {
	Track     Track
	FinalFees decimal.Decimal
}

// Totals aggregates both tracks. TotalPending is signed: negative means the
// subject has overpaid. Clamping for display is the caller's business.
type Totals struct {
	TotalFees    decimal.Decimal `json:"total_fees"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
}

// OverpaymentError reports a candidate payment that would push a track's
// paid total above its contracted final fee. It carries enough context for
// the handler to render a precise field error.
type OverpaymentError struct {
	Track            Track
	Attempted        decimal.Decimal
	RemainingBalance decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %s exceeds remaining %s balance of %s",
		e.Attempted.StringFixed(2), e.Track, e.RemainingBalance.StringFixed(2))
}

// normalizeTrack maps untagged (or unrecognized) entries onto the regular
// track, the backward-compatible default for records created before PT
// fees were tracked separately.
func normalizeTrack(t Track) Track {
	if t == TrackPT {
		return TrackPT
	}
	return TrackRegular
}

// SumByTrack totals the paid amounts of the entries belonging to track.
func SumByTrack(entries []Entry, track Track) decimal.Decimal {
	sum := decimal.Zero
	track = normalizeTrack(track)
	for _, e := range entries {
		if normalizeTrack(e.Track) == track {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// FinalFeesFor totals the contracted final fees recorded for track.
func FinalFeesFor(fees []FeeTotal, track Track) decimal.Decimal {
	sum := decimal.Zero
	track = normalizeTrack(track)
	for _, f := range fees {
		if normalizeTrack(f.Track) == track {
			sum = sum.Add(f.FinalFees)
		}
	}
	return sum
}

// PendingForTrack is the signed outstanding amount for a track: final fees
// minus payments. Negative when overpaid; never clamped here.
func PendingForTrack(fees []FeeTotal, entries []Entry, track Track) decimal.Decimal {
	return FinalFeesFor(fees, track).Sub(SumByTrack(entries, track))
}

// TotalAcrossTracks aggregates fees, payments and pending across both
// tracks.
func TotalAcrossTracks(fees []FeeTotal, entries []Entry) Totals {
	totalFees := FinalFeesFor(fees, TrackRegular).Add(FinalFeesFor(fees, TrackPT))
	totalPaid := SumByTrack(entries, TrackRegular).Add(SumByTrack(entries, TrackPT))
	return Totals{
		TotalFees:    totalFees,
		TotalPaid:    totalPaid,
		TotalPending: totalFees.Sub(totalPaid),
	}
}

// ValidatePayment checks that candidate does not overdraw the remaining
// balance on track. When amending an existing payment, pass its id as
// excludeID so its prior contribution is dropped from the baseline,
// otherwise re-saving a maxed-out payment at the same amount would fail.
// Returns *OverpaymentError on violation, nil otherwise.
func ValidatePayment(candidate decimal.Decimal, track Track, fees []FeeTotal, entries []Entry, excludeID *int) error {
	track = normalizeTrack(track)

	paid := decimal.Zero
	for _, e := range entries {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if normalizeTrack(e.Track) == track {
			paid = paid.Add(e.Amount)
		}
	}

	remaining := FinalFeesFor(fees, track).Sub(paid)
	if candidate.GreaterThan(remaining) {
		return &OverpaymentError{
			Track:            track,
			Attempted:        candidate,
			RemainingBalance: remaining,
		}
	}
	return nil
}
