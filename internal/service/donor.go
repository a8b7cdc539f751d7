package service

import (
	"context"
	"strings"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/metrics"
	"lifeline/internal/repository"
)

type donorService struct {
	donorRepo repository.DonorRepository
	metrics   *metrics.Metrics
}

func NewDonorService(donorRepo repository.DonorRepository, m *metrics.Metrics) DonorService {
	return &donorService{donorRepo: donorRepo, metrics: m}
}

// CreateDonor inserts unconditionally; the same person may register twice.
func (s *donorService) CreateDonor(ctx context.Context, in NewDonor) (*domain.Donor, error) {
	logger.EnterMethod("donorService.CreateDonor")

	out, err := s.createDonor(ctx, in)
	if err != nil {
		logger.ExitMethodWithError("donorService.CreateDonor", err)
		return nil, err
	}

	logger.ExitMethod("donorService.CreateDonor")
	return out, nil
}

func (s *donorService) createDonor(ctx context.Context, in NewDonor) (*domain.Donor, error) {
	name, err := domain.RequireText("donorName", in.DonorName)
	if err != nil {
		return nil, err
	}
	group, err := domain.NormalizeBloodGroup(in.BloodGroup)
	if err != nil {
		return nil, err
	}
	location, err := domain.RequireText("location", in.Location)
	if err != nil {
		return nil, err
	}
	phone := strings.TrimSpace(in.PhoneNumber)
	if err := domain.ValidatePhone(phone); err != nil {
		return nil, err
	}

	donor := &domain.Donor{
		DonorName:   name,
		BloodGroup:  group,
		Location:    location,
		PhoneNumber: phone,
	}
	if err := s.donorRepo.Create(ctx, donor); err != nil {
		return nil, storageFailure("create donor", err)
	}
	s.metrics.IncrementDonorsRegistered()
	return donor, nil
}

func (s *donorService) FindDonorsByBloodGroupIn(ctx context.Context, groups []string, excludePhone string) ([]domain.Donor, error) {
	donors, err := s.donorRepo.ListByBloodGroups(ctx, groups, excludePhone)
	if err != nil {
		return nil, storageFailure("list donors", err)
	}
	return donors, nil
}
