package member

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/billing"
	"gymdesk/internal/plan"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, gymID int, name, phone, email string) (*Member, error) {
	args := m.Called(ctx, gymID, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID int) ([]Member, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, name, phone, email string) (*Member, error) {
	args := m.Called(ctx, id, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) LatestMembership(ctx context.Context, memberID int) (*Membership, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) LatestMemberships(ctx context.Context, gymID int) (map[int]*Membership, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]*Membership), args.Error(1)
}

func (m *MockRepository) CreateMembership(ctx context.Context, memberID, planID int, renewalType billing.RenewalType, regularFees decimal.Decimal, ptFees *decimal.Decimal, startDate, endDate time.Time) (*Membership, error) {
	args := m.Called(ctx, memberID, planID, renewalType, regularFees, ptFees, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Membership), args.Error(1)
}

func (m *MockRepository) ListMemberships(ctx context.Context, memberID int) ([]Membership, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Membership), args.Error(1)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, name, description string, price decimal.Decimal, durationDays int) (*plan.Plan, error) {
	args := m.Called(ctx, name, description, price, durationDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id int) (*plan.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context, includeInactive bool) ([]plan.Plan, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) Update(ctx context.Context, id int, name, description string) (*plan.Plan, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *MockPlanRepository) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_ListMembersWithStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	endToday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockRepo, mockPlans, billing.DefaultExpiringSoonDays)

	mockRepo.On("ListByGym", mock.Anything, 1).Return([]Member{
		{ID: 1, GymID: 1, Name: "Asha"},
		{ID: 2, GymID: 1, Name: "Vikram"},
	}, nil)
	mockRepo.On("LatestMemberships", mock.Anything, 1).Return(map[int]*Membership{
		1: {ID: 10, MemberID: 1, PlanID: 3, StartDate: now.AddDate(0, -1, 0), EndDate: &endToday},
	}, nil)

	rows, err := service.ListMembersWithStatus(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Membership ends today: expiring soon with zero days left.
	assert.Equal(t, billing.StatusExpiringSoon, rows[0].Status)
	require.NotNil(t, rows[0].DaysRemaining)
	assert.Equal(t, 0, *rows[0].DaysRemaining)

	assert.Equal(t, billing.StatusNew, rows[1].Status)
	assert.Nil(t, rows[1].DaysRemaining)
}

func TestService_AssignMembership_WithPTFees(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	mockRepo := new(MockRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockRepo, mockPlans, billing.DefaultExpiringSoonDays)

	p := &plan.Plan{ID: 3, Price: decimal.NewFromInt(1500), DurationDays: 30, IsActive: true}
	ptFees := decimal.NewFromInt(2000)

	mockRepo.On("GetByID", mock.Anything, 1).Return(&Member{ID: 1}, nil)
	mockPlans.On("GetByID", mock.Anything, 3).Return(p, nil)
	mockRepo.On("LatestMembership", mock.Anything, 1).Return(nil, sql.ErrNoRows)
	mockRepo.On("CreateMembership", mock.Anything, 1, 3, billing.RenewalNew,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(p.Price) }),
		&ptFees, now, now.AddDate(0, 0, 30)).
		Return(&Membership{ID: 50, MemberID: 1, PlanID: 3, RenewalType: billing.RenewalNew, PTFees: &ptFees}, nil)

	ms, err := service.AssignMembership(context.Background(), 1, AssignMembershipRequest{
		PlanID: 3,
		PTFees: &ptFees,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, billing.RenewalNew, ms.RenewalType)
	require.NotNil(t, ms.PTFees)
	mockRepo.AssertExpectations(t)
}

func TestService_AssignMembership_RejectsNegativePTFees(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPlans := new(MockPlanRepository)
	service := NewService(mockRepo, mockPlans, billing.DefaultExpiringSoonDays)

	mockRepo.On("GetByID", mock.Anything, 1).Return(&Member{ID: 1}, nil)
	mockPlans.On("GetByID", mock.Anything, 3).Return(&plan.Plan{
		ID: 3, Price: decimal.NewFromInt(1500), DurationDays: 30, IsActive: true,
	}, nil)

	negative := decimal.NewFromInt(-100)
	_, err := service.AssignMembership(context.Background(), 1, AssignMembershipRequest{
		PlanID: 3,
		PTFees: &negative,
	}, time.Now())

	assert.ErrorIs(t, err, ErrInvalidPTFees)
	mockRepo.AssertNotCalled(t, "CreateMembership")
}

func TestMembership_FeeTotals(t *testing.T) {
	ptFees := decimal.NewFromInt(2000)

	withPT := &Membership{RegularFees: decimal.NewFromInt(1000), PTFees: &ptFees}
	totals := withPT.FeeTotals()
	require.Len(t, totals, 2)
	assert.Equal(t, billing.TrackRegular, totals[0].Track)
	assert.Equal(t, billing.TrackPT, totals[1].Track)

	withoutPT := &Membership{RegularFees: decimal.NewFromInt(1000)}
	totals = withoutPT.FeeTotals()
	require.Len(t, totals, 1)
	assert.Equal(t, billing.TrackRegular, totals[0].Track)

	var nilMembership *Membership
	assert.Nil(t, nilMembership.FeeTotals())
}
