package service

import (
	"context"

	"lifeline/internal/domain"
)

type UserSignup struct {
	FirstName   string
	BloodGroup  string
	PhoneNumber string
	Password    string
}

type HospitalSignup struct {
	HospitalName string
	DoctorName   string
	HospitalID   int64
	Password     string
}

type NewDonor struct {
	DonorName   string
	BloodGroup  string
	Location    string
	PhoneNumber string
}

type NewRequest struct {
	PatientName  string
	HospitalName string
	HospitalID   int64
	BloodGroup   string
	Location     string
}

type IdentityService interface {
	SignupUser(ctx context.Context, in UserSignup) (*domain.User, error)
	SignupHospital(ctx context.Context, in HospitalSignup) (*domain.Hospital, error)
	LoginUser(ctx context.Context, phone, password string) (*domain.User, error)
	LoginHospital(ctx context.Context, hospitalID int64, password string) (*domain.Hospital, error)
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindHospitalByID(ctx context.Context, hospitalID int64) (*domain.Hospital, error)
}

type DonorService interface {
	CreateDonor(ctx context.Context, in NewDonor) (*domain.Donor, error)
	FindDonorsByBloodGroupIn(ctx context.Context, groups []string, excludePhone string) ([]domain.Donor, error)
}

// RequestWorkflow takes the caller's session explicitly on every mutating call.
type RequestWorkflow interface {
	CreateRequest(ctx context.Context, sess domain.Session, in NewRequest) (*domain.BloodRequest, error)
	Decide(ctx context.Context, sess domain.Session, requestID string, outcome domain.Outcome) (*domain.BloodRequest, error)
	ListForHospital(ctx context.Context, hospitalID int64) (*domain.HospitalRequests, error)
	ListForRequester(ctx context.Context, phone string) (*domain.RequesterRequests, error)
}

type MatchingService interface {
	FindMatches(ctx context.Context, phone string) (*domain.Matches, error)
}
