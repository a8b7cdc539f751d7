package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/metrics"
	"lifeline/internal/repository"
	"lifeline/internal/security"
)

type identityService struct {
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	metrics      *metrics.Metrics
}

func NewIdentityService(userRepo repository.UserRepository, hospitalRepo repository.HospitalRepository, m *metrics.Metrics) IdentityService {
	return &identityService{
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
		metrics:      m,
	}
}

func (s *identityService) SignupUser(ctx context.Context, in UserSignup) (*domain.User, error) {
	logger.EnterMethod("identityService.SignupUser")

	out, err := s.signupUser(ctx, in)
	if err != nil {
		logger.ExitMethodWithError("identityService.SignupUser", err)
		return nil, err
	}

	logger.ExitMethod("identityService.SignupUser")
	return out, nil
}

func (s *identityService) signupUser(ctx context.Context, in UserSignup) (*domain.User, error) {
	firstName, err := domain.RequireText("firstName", in.FirstName)
	if err != nil {
		return nil, err
	}
	group, err := domain.NormalizeBloodGroup(in.BloodGroup)
	if err != nil {
		return nil, err
	}
	phone := strings.TrimSpace(in.PhoneNumber)
	if err := domain.ValidatePhone(phone); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		BloodGroup:   group,
		PhoneNumber:  phone,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrDuplicatePhone
		}
		return nil, storageFailure("create user", err)
	}

	logger.Info("user registered", "userID", user.ID)
	return user, nil
}

func (s *identityService) SignupHospital(ctx context.Context, in HospitalSignup) (*domain.Hospital, error) {
	logger.EnterMethod("identityService.SignupHospital", "hospitalID", in.HospitalID)

	out, err := s.signupHospital(ctx, in)
	if err != nil {
		logger.ExitMethodWithError("identityService.SignupHospital", err, "hospitalID", in.HospitalID)
		return nil, err
	}

	logger.ExitMethod("identityService.SignupHospital", "hospitalID", in.HospitalID)
	return out, nil
}

func (s *identityService) signupHospital(ctx context.Context, in HospitalSignup) (*domain.Hospital, error) {
	name, err := domain.RequireText("HospName", in.HospitalName)
	if err != nil {
		return nil, err
	}
	doctor, err := domain.RequireText("DocName", in.DoctorName)
	if err != nil {
		return nil, err
	}
	if in.HospitalID <= 0 {
		return nil, fmt.Errorf("%w: hospital ID must be a positive integer", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hospital := &domain.Hospital{
		HospitalID:   in.HospitalID,
		HospitalName: name,
		DoctorName:   doctor,
		PasswordHash: hash,
	}
	if err := s.hospitalRepo.Create(ctx, hospital); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrDuplicateHospital
		}
		return nil, storageFailure("create hospital", err)
	}

	logger.Info("hospital registered", "hospitalID", hospital.HospitalID)
	return hospital, nil
}

// LoginUser never says which half of the credentials was wrong.
func (s *identityService) LoginUser(ctx context.Context, phone, password string) (*domain.User, error) {
	logger.EnterMethod("identityService.LoginUser")

	out, err := s.loginUser(ctx, phone, password)
	if err != nil {
		logger.ExitMethodWithError("identityService.LoginUser", err)
		return nil, err
	}

	logger.ExitMethod("identityService.LoginUser")
	return out, nil
}

func (s *identityService) loginUser(ctx context.Context, phone, password string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	if domain.ValidatePhone(phone) != nil {
		s.metrics.IncrementSignInFailure("requester")
		return nil, domain.ErrCredentialMismatch
	}

	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.IncrementSignInFailure("requester")
			return nil, domain.ErrCredentialMismatch
		}
		return nil, storageFailure("load user", err)
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		s.metrics.IncrementSignInFailure("requester")
		return nil, domain.ErrCredentialMismatch
	}
	return user, nil
}

func (s *identityService) LoginHospital(ctx context.Context, hospitalID int64, password string) (*domain.Hospital, error) {
	logger.EnterMethod("identityService.LoginHospital", "hospitalID", hospitalID)

	out, err := s.loginHospital(ctx, hospitalID, password)
	if err != nil {
		logger.ExitMethodWithError("identityService.LoginHospital", err, "hospitalID", hospitalID)
		return nil, err
	}

	logger.ExitMethod("identityService.LoginHospital", "hospitalID", hospitalID)
	return out, nil
}

func (s *identityService) loginHospital(ctx context.Context, hospitalID int64, password string) (*domain.Hospital, error) {
	if hospitalID <= 0 {
		s.metrics.IncrementSignInFailure("hospital")
		return nil, domain.ErrCredentialMismatch
	}

	hospital, err := s.hospitalRepo.GetByHospitalID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.metrics.IncrementSignInFailure("hospital")
			return nil, domain.ErrCredentialMismatch
		}
		return nil, storageFailure("load hospital", err)
	}

	if !security.CheckPassword(hospital.PasswordHash, password) {
		s.metrics.IncrementSignInFailure("hospital")
		return nil, domain.ErrCredentialMismatch
	}
	return hospital, nil
}

func (s *identityService) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storageFailure("load user", err)
	}
	return user, nil
}

func (s *identityService) FindHospitalByID(ctx context.Context, hospitalID int64) (*domain.Hospital, error) {
	hospital, err := s.hospitalRepo.GetByHospitalID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storageFailure("load hospital", err)
	}
	return hospital, nil
}
