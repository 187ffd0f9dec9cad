package member

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/billing"
	"gymdesk/internal/plan"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrPlanInactive    = errors.New("plan is not active")
	ErrInvalidDiscount = errors.New("discount exceeds plan price")
	ErrInvalidPTFees   = errors.New("pt fees must not be negative")
)

type Service interface {
	CreateMember(ctx context.Context, req CreateMemberRequest) (*Member, error)
	GetMember(ctx context.Context, id int) (*Member, error)
	UpdateMember(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)

	ListMembersWithStatus(ctx context.Context, gymID int, now time.Time) ([]MemberWithStatus, error)
	GetMemberStatus(ctx context.Context, id int, now time.Time) (*MemberWithStatus, error)

	AssignMembership(ctx context.Context, memberID int, req AssignMembershipRequest, now time.Time) (*Membership, error)
	MembershipHistory(ctx context.Context, memberID int) ([]Membership, error)
}

type service struct {
	repo         Repository
	plans        plan.Repository
	expiringSoon int
}

func NewService(repo Repository, plans plan.Repository, expiringSoonDays int) Service {
	if expiringSoonDays <= 0 {
		expiringSoonDays = billing.DefaultExpiringSoonDays
	}
	return &service{repo: repo, plans: plans, expiringSoon: expiringSoonDays}
}

func (s *service) CreateMember(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	return s.repo.Create(ctx, req.GymID, req.Name, req.Phone, req.Email)
}

func (s *service) GetMember(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

func (s *service) UpdateMember(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.repo.Update(ctx, id, req.Name, req.Phone, req.Email)
}

// ListMembersWithStatus derives every member's membership status against
// the same now snapshot.
func (s *service) ListMembersWithStatus(ctx context.Context, gymID int, now time.Time) ([]MemberWithStatus, error) {
	members, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}

	latest, err := s.repo.LatestMemberships(ctx, gymID)
	if err != nil {
		return nil, err
	}

	out := make([]MemberWithStatus, 0, len(members))
	for _, m := range members {
		membership := latest[m.ID]
		res := billing.ResolveStatus(membership.BillingPeriod(), now, s.expiringSoon)

		row := MemberWithStatus{
			Member:        m,
			Status:        res.Status,
			DaysRemaining: res.DaysRemaining,
		}
		if membership != nil {
			planID := membership.PlanID
			row.PlanID = &planID
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *service) GetMemberStatus(ctx context.Context, id int, now time.Time) (*MemberWithStatus, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrMemberNotFound
	}

	membership, err := s.latestMembershipOrNil(ctx, id)
	if err != nil {
		return nil, err
	}

	res := billing.ResolveStatus(membership.BillingPeriod(), now, s.expiringSoon)
	row := &MemberWithStatus{
		Member:        *m,
		Status:        res.Status,
		DaysRemaining: res.DaysRemaining,
	}
	if membership != nil {
		planID := membership.PlanID
		row.PlanID = &planID
	}
	return row, nil
}

func (s *service) AssignMembership(ctx context.Context, memberID int, req AssignMembershipRequest, now time.Time) (*Membership, error) {
	if _, err := s.repo.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}

	p, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	if !p.IsActive {
		return nil, ErrPlanInactive
	}

	regularFees := p.Price
	if req.Discount != nil {
		if req.Discount.IsNegative() || req.Discount.GreaterThan(p.Price) {
			return nil, ErrInvalidDiscount
		}
		regularFees = p.Price.Sub(*req.Discount)
	}
	if req.PTFees != nil && req.PTFees.IsNegative() {
		return nil, ErrInvalidPTFees
	}

	prior, err := s.latestMembershipOrNil(ctx, memberID)
	if err != nil {
		return nil, err
	}
	renewalType := billing.ClassifyRenewal(prior != nil)

	start := now
	end := start.AddDate(0, 0, p.DurationDays)
	return s.repo.CreateMembership(ctx, memberID, p.ID, renewalType, regularFees, req.PTFees, start, end)
}

func (s *service) MembershipHistory(ctx context.Context, memberID int) ([]Membership, error) {
	if _, err := s.repo.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.repo.ListMemberships(ctx, memberID)
}

func (s *service) latestMembershipOrNil(ctx context.Context, memberID int) (*Membership, error) {
	membership, err := s.repo.LatestMembership(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return membership, nil
}
