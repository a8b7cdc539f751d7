package http_test

import (
	"context"

	"lifeline/internal/domain"
	"lifeline/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockIdentityService
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) SignupUser(ctx context.Context, in service.UserSignup) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) SignupHospital(ctx context.Context, in service.HospitalSignup) (*domain.Hospital, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hospital), args.Error(1)
}
func (m *MockIdentityService) LoginUser(ctx context.Context, phone, password string) (*domain.User, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) LoginHospital(ctx context.Context, hospitalID int64, password string) (*domain.Hospital, error) {
	args := m.Called(ctx, hospitalID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hospital), args.Error(1)
}
func (m *MockIdentityService) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) FindHospitalByID(ctx context.Context, hospitalID int64) (*domain.Hospital, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hospital), args.Error(1)
}

// MockDonorService
type MockDonorService struct {
	mock.Mock
}

func (m *MockDonorService) CreateDonor(ctx context.Context, in service.NewDonor) (*domain.Donor, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}
func (m *MockDonorService) FindDonorsByBloodGroupIn(ctx context.Context, groups []string, excludePhone string) ([]domain.Donor, error) {
	args := m.Called(ctx, groups, excludePhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donor), args.Error(1)
}

// MockWorkflow
type MockWorkflow struct {
	mock.Mock
}

func (m *MockWorkflow) CreateRequest(ctx context.Context, sess domain.Session, in service.NewRequest) (*domain.BloodRequest, error) {
	args := m.Called(ctx, sess, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}
func (m *MockWorkflow) Decide(ctx context.Context, sess domain.Session, requestID string, outcome domain.Outcome) (*domain.BloodRequest, error) {
	args := m.Called(ctx, sess, requestID, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}
func (m *MockWorkflow) ListForHospital(ctx context.Context, hospitalID int64) (*domain.HospitalRequests, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HospitalRequests), args.Error(1)
}
func (m *MockWorkflow) ListForRequester(ctx context.Context, phone string) (*domain.RequesterRequests, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequesterRequests), args.Error(1)
}

// MockMatching
type MockMatching struct {
	mock.Mock
}

func (m *MockMatching) FindMatches(ctx context.Context, phone string) (*domain.Matches, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Matches), args.Error(1)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}
