package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"gymdesk/internal/billing"
)

// Record is one payment taken from a member, tagged with the ledger track
// it settles. Records created before PT fees were split out carry an empty
// track and count against the regular ledger.
type Record struct {
	ID        int             `db:"id" json:"id"`
	MemberID  int             `db:"member_id" json:"member_id"`
	Track     billing.Track   `db:"track" json:"track"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	PaidAt    time.Time       `db:"paid_at" json:"paid_at"`
	Note      string          `db:"note" json:"note,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

func (r *Record) Entry() billing.Entry {
	return billing.Entry{ID: r.ID, Track: r.Track, Amount: r.Amount, PaidAt: r.PaidAt}
}

func entries(records []Record) []billing.Entry {
	out := make([]billing.Entry, 0, len(records))
	for i := range records {
		out = append(out, records[i].Entry())
	}
	return out
}

type RecordPaymentRequest struct {
	Track  billing.Track   `json:"track"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PaidAt *time.Time      `json:"paid_at,omitempty"`
	Note   string          `json:"note,omitempty"`
}

type AmendPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PaidAt *time.Time      `json:"paid_at,omitempty"`
	Note   string          `json:"note,omitempty"`
}

// TrackSummary is one track's slice of a member's ledger. Pending is
// signed; a negative value means the track is overpaid.
type TrackSummary struct {
	Track     billing.Track   `json:"track"`
	FinalFees decimal.Decimal `json:"final_fees"`
	Paid      decimal.Decimal `json:"paid"`
	Pending   decimal.Decimal `json:"pending"`
}

type Summary struct {
	MemberID int            `json:"member_id"`
	Tracks   []TrackSummary `json:"tracks"`
	billing.Totals
}
