package service_test

import (
	"context"

	"lifeline/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockHospitalRepo
type MockHospitalRepo struct {
	mock.Mock
}

func (m *MockHospitalRepo) Create(ctx context.Context, hospital *domain.Hospital) error {
	args := m.Called(ctx, hospital)
	return args.Error(0)
}
func (m *MockHospitalRepo) GetByHospitalID(ctx context.Context, hospitalID int64) (*domain.Hospital, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hospital), args.Error(1)
}

// MockDonorRepo
type MockDonorRepo struct {
	mock.Mock
}

func (m *MockDonorRepo) Create(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}
func (m *MockDonorRepo) ListByBloodGroups(ctx context.Context, groups []string, excludePhone string) ([]domain.Donor, error) {
	args := m.Called(ctx, groups, excludePhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donor), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.BloodRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.BloodRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRequestRepo) ListByHospital(ctx context.Context, hospitalID int64, status domain.RequestStatus) ([]domain.BloodRequest, error) {
	args := m.Called(ctx, hospitalID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BloodRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByRequester(ctx context.Context, phone string) ([]domain.BloodRequest, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BloodRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByRequesterAndStatus(ctx context.Context, phone string, status domain.RequestStatus) ([]domain.BloodRequest, error) {
	args := m.Called(ctx, phone, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BloodRequest), args.Error(1)
}
