package payment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/billing"
	"gymdesk/internal/member"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrNoMembership    = errors.New("member has no membership to pay against")
	ErrInvalidAmount   = errors.New("amount must be positive")
)

type Service interface {
	RecordPayment(ctx context.Context, memberID int, req RecordPaymentRequest, now time.Time) (*Record, error)
	AmendPayment(ctx context.Context, paymentID int, req AmendPaymentRequest) (*Record, error)
	ListPayments(ctx context.Context, memberID int) ([]Record, error)
	MemberSummary(ctx context.Context, memberID int) (*Summary, error)
}

type service struct {
	repo    Repository
	members member.Repository
}

func NewService(repo Repository, members member.Repository) Service {
	return &service{repo: repo, members: members}
}

// RecordPayment appends a payment to the member's ledger after the
// overpayment guard clears it against the latest membership's contracted
// fees. Validation failures surface as *billing.OverpaymentError.
func (s *service) RecordPayment(ctx context.Context, memberID int, req RecordPaymentRequest, now time.Time) (*Record, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}

	fees, records, err := s.ledgerBaseline(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if err := billing.ValidatePayment(req.Amount, req.Track, fees, entries(records), nil); err != nil {
		return nil, err
	}

	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	return s.repo.Create(ctx, memberID, req.Track, req.Amount, paidAt, req.Note)
}

// AmendPayment re-validates a corrected amount with the old record's own
// contribution excluded from the paid baseline, so re-saving an unchanged
// amount on a settled ledger still passes.
func (s *service) AmendPayment(ctx context.Context, paymentID int, req AmendPaymentRequest) (*Record, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	existing, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	fees, records, err := s.ledgerBaseline(ctx, existing.MemberID)
	if err != nil {
		return nil, err
	}

	if err := billing.ValidatePayment(req.Amount, existing.Track, fees, entries(records), &existing.ID); err != nil {
		return nil, err
	}

	paidAt := existing.PaidAt
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	note := existing.Note
	if req.Note != "" {
		note = req.Note
	}
	return s.repo.Update(ctx, paymentID, req.Amount, paidAt, note)
}

func (s *service) ListPayments(ctx context.Context, memberID int) ([]Record, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.repo.ListByMember(ctx, memberID)
}

// MemberSummary reports both tracks plus the combined totals. Pending
// figures are raw signed values; overpaid tracks show a negative pending.
func (s *service) MemberSummary(ctx context.Context, memberID int) (*Summary, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}

	// A member without a membership still gets a summary: zero fees, and
	// whatever payments exist count as overpayment.
	ms, err := s.members.LatestMembership(ctx, memberID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	records, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	fees := ms.FeeTotals()
	ledger := entries(records)

	tracks := make([]TrackSummary, 0, 2)
	for _, track := range []billing.Track{billing.TrackRegular, billing.TrackPT} {
		tracks = append(tracks, TrackSummary{
			Track:     track,
			FinalFees: billing.FinalFeesFor(fees, track),
			Paid:      billing.SumByTrack(ledger, track),
			Pending:   billing.PendingForTrack(fees, ledger, track),
		})
	}

	return &Summary{
		MemberID: memberID,
		Tracks:   tracks,
		Totals:   billing.TotalAcrossTracks(fees, ledger),
	}, nil
}

// ledgerBaseline loads the contracted fee totals from the member's latest
// membership and the full payment history. A member with no membership
// yet cannot take payments.
func (s *service) ledgerBaseline(ctx context.Context, memberID int) ([]billing.FeeTotal, []Record, error) {
	ms, err := s.members.LatestMembership(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNoMembership
		}
		return nil, nil, err
	}

	records, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	return ms.FeeTotals(), records, nil
}
