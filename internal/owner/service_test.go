package owner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, phone string) (*Owner, error) {
	args := m.Called(ctx, name, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Owner), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Owner), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Owner), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, name, phone string) (*Owner, error) {
	args := m.Called(ctx, id, name, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Owner), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_CreateOwner(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("EmailExists", mock.Anything, "raj@ironworks.in").Return(false, nil)
	mockRepo.On("Create", mock.Anything, "Raj", "raj@ironworks.in", "+911234567890").Return(&Owner{
		ID:    1,
		Name:  "Raj",
		Email: "raj@ironworks.in",
	}, nil)

	o, err := service.CreateOwner(context.Background(), CreateOwnerRequest{
		Name:  "Raj",
		Email: "raj@ironworks.in",
		Phone: "+911234567890",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, o.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_CreateOwner_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("EmailExists", mock.Anything, "raj@ironworks.in").Return(true, nil)

	o, err := service.CreateOwner(context.Background(), CreateOwnerRequest{
		Name:  "Raj",
		Email: "raj@ironworks.in",
		Phone: "+911234567890",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, o)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_GetOwner_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, 99).Return(nil, errors.New("not found"))

	o, err := service.GetOwner(context.Background(), 99)

	assert.ErrorIs(t, err, ErrOwnerNotFound)
	assert.Nil(t, o)
}
