package owner

import (
	"context"
	"errors"
)

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrEmailTaken    = errors.New("email already registered")
)

type Service interface {
	CreateOwner(ctx context.Context, req CreateOwnerRequest) (*Owner, error)
	GetOwner(ctx context.Context, id int) (*Owner, error)
	ListOwners(ctx context.Context) ([]Owner, error)
	UpdateOwner(ctx context.Context, id int, req UpdateOwnerRequest) (*Owner, error)
	DeleteOwner(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateOwner(ctx context.Context, req CreateOwnerRequest) (*Owner, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	return s.repo.Create(ctx, req.Name, req.Email, req.Phone)
}

func (s *service) GetOwner(ctx context.Context, id int) (*Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrOwnerNotFound
	}
	return o, nil
}

func (s *service) ListOwners(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateOwner(ctx context.Context, id int, req UpdateOwnerRequest) (*Owner, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrOwnerNotFound
	}
	return s.repo.Update(ctx, id, req.Name, req.Phone)
}

func (s *service) DeleteOwner(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrOwnerNotFound
	}
	return s.repo.Delete(ctx, id)
}
