package gym

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/billing"
	"gymdesk/internal/plan"
)

var (
	ErrGymNotFound     = errors.New("gym not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrPlanInactive    = errors.New("plan is not active")
	ErrInvalidDiscount = errors.New("discount exceeds plan price")
	ErrNoActivePlan    = errors.New("gym has no subscription to change")
	ErrSamePlan        = errors.New("gym is already on this plan")
)

type Service interface {
	CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error)
	GetGym(ctx context.Context, id int) (*Gym, error)
	UpdateGym(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error)

	// ListGymsWithStatus resolves every gym's subscription status against
	// the same now snapshot so one listing is internally consistent.
	ListGymsWithStatus(ctx context.Context, now time.Time) ([]GymWithStatus, error)
	GetGymStatus(ctx context.Context, id int, now time.Time) (*GymWithStatus, error)
	SubscriptionHistory(ctx context.Context, gymID int) ([]SubscriptionPeriod, error)

	Subscribe(ctx context.Context, gymID int, req SubscribeRequest, now time.Time) (*SubscriptionPeriod, error)
	PreviewPlanChange(ctx context.Context, gymID, newPlanID int, now time.Time) (*PlanChangePreview, error)
	ChangePlan(ctx context.Context, gymID, newPlanID int, now time.Time) (*ChangePlanResponse, error)
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

func (s *service) CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	return s.repo.CreateGym(ctx, req.OwnerID, req.Name, req.City, req.Address)
}

func (s *service) GetGym(ctx context.Context, id int) (*Gym, error) {
	g, err := s.repo.GetGymByID(ctx, id)
	if err != nil {
		return nil, ErrGymNotFound
	}
	return g, nil
}

func (s *service) UpdateGym(ctx context.Context, id int, req UpdateGymRequest) (*Gym, error) {
	if _, err := s.repo.GetGymByID(ctx, id); err != nil {
		return nil, ErrGymNotFound
	}
	return s.repo.UpdateGym(ctx, id, req.Name, req.City, req.Address)
}

func (s *service) ListGymsWithStatus(ctx context.Context, now time.Time) ([]GymWithStatus, error) {
	gyms, err := s.repo.ListGyms(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.repo.LatestPeriods(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GymWithStatus, 0, len(gyms))
	for _, g := range gyms {
		period := latest[g.ID]
		res := billing.ResolveStatus(period.BillingPeriod(), now, s.expiringSoon)

		row := GymWithStatus{
			Gym:           g,
			Status:        res.Status,
			DaysRemaining: res.DaysRemaining,
		}
		if period != nil {
			planID := period.PlanID
			row.PlanID = &planID
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *service) GetGymStatus(ctx context.Context, id int, now time.Time) (*GymWithStatus, error) {
	g, err := s.repo.GetGymByID(ctx, id)
	if err != nil {
		return nil, ErrGymNotFound
	}

	period, err := s.latestPeriodOrNil(ctx, id)
	if err != nil {
		return nil, err
	}

	res := billing.ResolveStatus(period.BillingPeriod(), now, s.expiringSoon)
	row := &GymWithStatus{
		Gym:           *g,
		Status:        res.Status,
		DaysRemaining: res.DaysRemaining,
	}
	if period != nil {
		planID := period.PlanID
		row.PlanID = &planID
	}
	return row, nil
}

func (s *service) SubscriptionHistory(ctx context.Context, gymID int) ([]SubscriptionPeriod, error) {
	if _, err := s.repo.GetGymByID(ctx, gymID); err != nil {
		return nil, ErrGymNotFound
	}
	return s.repo.ListPeriods(ctx, gymID)
}

func (s *service) Subscribe(ctx context.Context, gymID int, req SubscribeRequest, now time.Time) (*SubscriptionPeriod, error) {
	if _, err := s.repo.GetGymByID(ctx, gymID); err != nil {
		return nil, ErrGymNotFound
	}

	p, err := s.activePlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	finalFees := p.Price
	if req.Discount != nil {
		if req.Discount.IsNegative() || req.Discount.GreaterThan(p.Price) {
			return nil, ErrInvalidDiscount
		}
		finalFees = p.Price.Sub(*req.Discount)
	}

	prior, err := s.latestPeriodOrNil(ctx, gymID)
	if err != nil {
		return nil, err
	}
	renewalType := billing.ClassifyRenewal(prior != nil)

	start := now
	end := start.AddDate(0, 0, p.DurationDays)
	return s.repo.CreatePeriod(ctx, gymID, p.ID, renewalType, finalFees, start, end)
}

func (s *service) PreviewPlanChange(ctx context.Context, gymID, newPlanID int, now time.Time) (*PlanChangePreview, error) {
	proration, _, _, err := s.prorate(ctx, gymID, newPlanID, now)
	if err != nil {
		return nil, err
	}
	return &PlanChangePreview{
		Proration:     proration,
		FreshPurchase: proration == nil,
	}, nil
}

func (s *service) ChangePlan(ctx context.Context, gymID, newPlanID int, now time.Time) (*ChangePlanResponse, error) {
	proration, newPlan, current, err := s.prorate(ctx, gymID, newPlanID, now)
	if err != nil {
		return nil, err
	}

	renewalType := billing.RenewalRenewed
	switch {
	case proration == nil:
		// Expired mid-change: price it as a fresh purchase.
		renewalType = billing.ClassifyRenewal(current != nil)
	case proration.IsUpgrade:
		renewalType = billing.RenewalUpgrade
	case proration.Difference.IsPositive():
		renewalType = billing.RenewalDowngrade
	}

	start := now
	end := start.AddDate(0, 0, newPlan.DurationDays)
	period, err := s.repo.CreatePeriod(ctx, gymID, newPlan.ID, renewalType, newPlan.Price, start, end)
	if err != nil {
		return nil, err
	}

	return &ChangePlanResponse{Period: period, Proration: proration}, nil
}

// prorate loads the gym's current term and the target plan and prices the
// switch at now. The returned proration is nil when there is nothing left
// on the current term.
func (s *service) prorate(ctx context.Context, gymID, newPlanID int, now time.Time) (*billing.Proration, *plan.Plan, *SubscriptionPeriod, error) {
	if _, err := s.repo.GetGymByID(ctx, gymID); err != nil {
		return nil, nil, nil, ErrGymNotFound
	}

	newPlan, err := s.activePlan(ctx, newPlanID)
	if err != nil {
		return nil, nil, nil, err
	}

	current, err := s.latestPeriodOrNil(ctx, gymID)
	if err != nil {
		return nil, nil, nil, err
	}
	if current == nil {
		return nil, nil, nil, ErrNoActivePlan
	}
	if current.PlanID == newPlan.ID {
		return nil, nil, nil, ErrSamePlan
	}

	currentPlan, err := s.plans.GetByID(ctx, current.PlanID)
	if err != nil {
		return nil, nil, nil, ErrPlanNotFound
	}

	res := billing.ResolveStatus(current.BillingPeriod(), now, s.expiringSoon)
	daysRemaining := 0
	if res.DaysRemaining != nil {
		daysRemaining = *res.DaysRemaining
	}
	if res.Status == billing.StatusExpired {
		daysRemaining = 0
	}

	proration := billing.ComputeProration(currentPlan.Terms(), newPlan.Terms(), daysRemaining)
	return proration, newPlan, current, nil
}

func (s *service) activePlan(ctx context.Context, planID int) (*plan.Plan, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	if !p.IsActive {
		return nil, ErrPlanInactive
	}
	return p, nil
}

func (s *service) latestPeriodOrNil(ctx context.Context, gymID int) (*SubscriptionPeriod, error) {
	period, err := s.repo.LatestPeriod(ctx, gymID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return period, nil
}

