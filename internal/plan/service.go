package plan

import (
	"context"
	"errors"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	// ErrInvalidDuration guards the invariant the proration calculator
	// relies on: a plan's duration is always a positive day count.
	ErrInvalidDuration = errors.New("plan duration must be at least one day")
	ErrInvalidPrice    = errors.New("plan price must not be negative")
)

type Service interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	GetPlan(ctx context.Context, id int) (*Plan, error)
	ListPlans(ctx context.Context, includeInactive bool) ([]Plan, error)
	UpdatePlan(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	DeactivatePlan(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	if req.DurationDays <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	return s.repo.Create(ctx, req.Name, req.Description, req.Price, req.DurationDays)
}

func (s *service) GetPlan(ctx context.Context, id int) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

func (s *service) ListPlans(ctx context.Context, includeInactive bool) ([]Plan, error) {
	return s.repo.List(ctx, includeInactive)
}

func (s *service) UpdatePlan(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrPlanNotFound
	}
	return s.repo.Update(ctx, id, req.Name, req.Description)
}

func (s *service) DeactivatePlan(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrPlanNotFound
	}
	return s.repo.Deactivate(ctx, id)
}
