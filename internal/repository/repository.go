package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

type HospitalRepository interface {
	Create(ctx context.Context, hospital *domain.Hospital) error
	GetByHospitalID(ctx context.Context, hospitalID int64) (*domain.Hospital, error)
}

type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) error
	ListByBloodGroups(ctx context.Context, groups []string, excludePhone string) ([]domain.Donor, error)
}

type BloodRequestRepository interface {
	Create(ctx context.Context, req *domain.BloodRequest) error
	GetByID(ctx context.Context, id string) (*domain.BloodRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	ListByHospital(ctx context.Context, hospitalID int64, status domain.RequestStatus) ([]domain.BloodRequest, error)
	ListByRequester(ctx context.Context, phone string) ([]domain.BloodRequest, error)
	ListByRequesterAndStatus(ctx context.Context, phone string, status domain.RequestStatus) ([]domain.BloodRequest, error)
}
