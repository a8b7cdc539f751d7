package service

import (
	"context"

	"lifeline/internal/domain"
	"lifeline/internal/repository"
)

type matchingService struct {
	requestRepo repository.BloodRequestRepository
	donors      DonorService
}

func NewMatchingService(requestRepo repository.BloodRequestRepository, donors DonorService) MatchingService {
	return &matchingService{requestRepo: requestRepo, donors: donors}
}

// FindMatches lists donors for the blood groups of the requester's approved
// requests, excluding the requester's own donor entries. Donors come back in
// storage order and are not deduplicated.
func (s *matchingService) FindMatches(ctx context.Context, phone string) (*domain.Matches, error) {
	approved, err := s.requestRepo.ListByRequesterAndStatus(ctx, phone, domain.RequestStatusApproved)
	if err != nil {
		return nil, storageFailure("list approved requests", err)
	}
	if len(approved) == 0 {
		return &domain.Matches{BloodGroups: []string{}, Donors: []domain.Donor{}}, nil
	}

	seen := make(map[string]bool)
	var groups []string
	for _, r := range approved {
		if !seen[r.BloodGroup] {
			seen[r.BloodGroup] = true
			groups = append(groups, r.BloodGroup)
		}
	}

	donors, err := s.donors.FindDonorsByBloodGroupIn(ctx, groups, phone)
	if err != nil {
		return nil, err
	}
	if donors == nil {
		donors = []domain.Donor{}
	}
	return &domain.Matches{BloodGroups: groups, Donors: donors}, nil
}
