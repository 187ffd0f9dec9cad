package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, description string, price decimal.Decimal, durationDays int) (*Plan, error) {
	args := m.Called(ctx, name, description, price, durationDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, includeInactive bool) ([]Plan, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Plan), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, name, description string) (*Plan, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_CreatePlan(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	req := CreatePlanRequest{
		Name:         "Monthly",
		Description:  "30-day membership",
		Price:        decimal.NewFromInt(1200),
		DurationDays: 30,
	}

	mockRepo.On("Create", mock.Anything, "Monthly", "30-day membership", req.Price, 30).Return(&Plan{
		ID:           1,
		Name:         "Monthly",
		Price:        req.Price,
		DurationDays: 30,
		IsActive:     true,
	}, nil)

	p, err := service.CreatePlan(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, 30, p.DurationDays)
	mockRepo.AssertExpectations(t)
}

// Zero or negative durations would mean division by zero in daily-rate
// proration; plan creation is where that invariant is enforced.
func TestService_CreatePlan_RejectsInvalidDuration(t *testing.T) {
	tests := []struct {
		name         string
		durationDays int
	}{
		{"zero duration", 0},
		{"negative duration", -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)

			p, err := service.CreatePlan(context.Background(), CreatePlanRequest{
				Name:         "Broken",
				Price:        decimal.NewFromInt(100),
				DurationDays: tt.durationDays,
			})

			assert.ErrorIs(t, err, ErrInvalidDuration)
			assert.Nil(t, p)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_CreatePlan_RejectsNegativePrice(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	p, err := service.CreatePlan(context.Background(), CreatePlanRequest{
		Name:         "Broken",
		Price:        decimal.NewFromInt(-100),
		DurationDays: 30,
	})

	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Nil(t, p)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_GetPlan_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 999).Return(nil, errors.New("sql: no rows in result set"))

	p, err := service.GetPlan(context.Background(), 999)

	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Nil(t, p)
}

func TestService_DeactivatePlan(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 1).Return(&Plan{ID: 1}, nil)
	mockRepo.On("Deactivate", mock.Anything, 1).Return(nil)

	err := service.DeactivatePlan(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
