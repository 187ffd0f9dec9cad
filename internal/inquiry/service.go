package inquiry

import (
	"context"
	"errors"

	"github.com/samber/lo"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInvalidStatus   = errors.New("unknown inquiry status")
	ErrBadTransition   = errors.New("inquiry status cannot move backwards")
)

// transitions lists the statuses each status may move to.
var transitions = map[Status][]Status{
	StatusNew:       {StatusContacted, StatusClosed},
	StatusContacted: {StatusClosed},
	StatusClosed:    {},
}

type Service interface {
	CreateInquiry(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error)
	GetInquiry(ctx context.Context, id int) (*Inquiry, error)
	ListInquiries(ctx context.Context, gymID int, status *Status) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id int, next Status) (*Inquiry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateInquiry(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error) {
	return s.repo.Create(ctx, req.GymID, req.Name, req.Phone, req.Email, req.Message)
}

func (s *service) GetInquiry(ctx context.Context, id int) (*Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrInquiryNotFound
	}
	return inq, nil
}

func (s *service) ListInquiries(ctx context.Context, gymID int, status *Status) ([]Inquiry, error) {
	inquiries, err := s.repo.ListByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return inquiries, nil
	}
	return lo.Filter(inquiries, func(inq Inquiry, _ int) bool {
		return inq.Status == *status
	}), nil
}

func (s *service) UpdateStatus(ctx context.Context, id int, next Status) (*Inquiry, error) {
	if _, known := transitions[next]; !known {
		return nil, ErrInvalidStatus
	}

	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrInquiryNotFound
	}

	if !lo.Contains(transitions[inq.Status], next) {
		return nil, ErrBadTransition
	}
	return s.repo.UpdateStatus(ctx, id, next)
}
