package dietplan

import (
	"context"
	"errors"

	"gymdesk/internal/member"
)

var (
	ErrDietPlanNotFound = errors.New("diet plan not found")
	ErrMemberNotFound   = errors.New("member not found")
)

type Service interface {
	CreateDietPlan(ctx context.Context, memberID int, req CreateDietPlanRequest) (*DietPlan, error)
	GetDietPlan(ctx context.Context, id int) (*DietPlan, error)
	ListDietPlans(ctx context.Context, memberID int) ([]DietPlan, error)
	UpdateDietPlan(ctx context.Context, id int, req UpdateDietPlanRequest) (*DietPlan, error)
	DeleteDietPlan(ctx context.Context, id int) error
}

type service struct {
	repo    Repository
	members member.Repository
}

func NewService(repo Repository, members member.Repository) Service {
	return &service{repo: repo, members: members}
}

func (s *service) CreateDietPlan(ctx context.Context, memberID int, req CreateDietPlanRequest) (*DietPlan, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.repo.Create(ctx, memberID, req.Title, req.Content)
}

func (s *service) GetDietPlan(ctx context.Context, id int) (*DietPlan, error) {
	dp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDietPlanNotFound
	}
	return dp, nil
}

func (s *service) ListDietPlans(ctx context.Context, memberID int) ([]DietPlan, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, ErrMemberNotFound
	}
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) UpdateDietPlan(ctx context.Context, id int, req UpdateDietPlanRequest) (*DietPlan, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrDietPlanNotFound
	}
	return s.repo.Update(ctx, id, req.Title, req.Content)
}

func (s *service) DeleteDietPlan(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
