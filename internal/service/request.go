package service

import (
	"context"
	"errors"

	"lifeline/internal/domain"
	"lifeline/internal/logger"
	"lifeline/internal/metrics"
	"lifeline/internal/repository"
)

type requestWorkflow struct {
	requestRepo  repository.BloodRequestRepository
	hospitalRepo repository.HospitalRepository
	metrics      *metrics.Metrics
}

func NewRequestWorkflow(requestRepo repository.BloodRequestRepository, hospitalRepo repository.HospitalRepository, m *metrics.Metrics) RequestWorkflow {
	return &requestWorkflow{
		requestRepo:  requestRepo,
		hospitalRepo: hospitalRepo,
		metrics:      m,
	}
}

// CreateRequest files a pending request owned by the session's requester. The
// owner is never taken from the form.
func (s *requestWorkflow) CreateRequest(ctx context.Context, sess domain.Session, in NewRequest) (*domain.BloodRequest, error) {
	logger.EnterMethod("requestWorkflow.CreateRequest", "hospitalID", in.HospitalID)

	req, err := s.createRequest(ctx, sess, in)
	if err != nil {
		logger.ExitMethodWithError("requestWorkflow.CreateRequest", err, "hospitalID", in.HospitalID)
		return nil, err
	}

	s.metrics.IncrementRequestsCreated()
	logger.Info("blood request created", "requestID", req.ID, "hospitalID", req.HospitalID)
	logger.ExitMethod("requestWorkflow.CreateRequest", "requestID", req.ID)
	return req, nil
}

func (s *requestWorkflow) createRequest(ctx context.Context, sess domain.Session, in NewRequest) (*domain.BloodRequest, error) {
	phone, ok := sess.Requester()
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	patient, err := domain.RequireText("patientname", in.PatientName)
	if err != nil {
		return nil, err
	}
	hospitalName, err := domain.RequireText("HospitalName", in.HospitalName)
	if err != nil {
		return nil, err
	}
	location, err := domain.RequireText("Location", in.Location)
	if err != nil {
		return nil, err
	}
	group, err := domain.NormalizeBloodGroup(in.BloodGroup)
	if err != nil {
		return nil, err
	}
	if in.HospitalID <= 0 {
		return nil, domain.ErrInvalidHospital
	}

	if _, err := s.hospitalRepo.GetByHospitalID(ctx, in.HospitalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrInvalidHospital
		}
		return nil, storageFailure("load hospital", err)
	}

	req := &domain.BloodRequest{
		PatientName:    patient,
		RequesterPhone: phone,
		HospitalName:   hospitalName,
		HospitalID:     in.HospitalID,
		BloodGroup:     group,
		Location:       location,
		Status:         domain.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		// The hospital vanished between the check and the insert.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrInvalidHospital
		}
		return nil, storageFailure("create request", err)
	}
	return req, nil
}

// Decide applies a hospital's outcome to one of its own requests.
func (s *requestWorkflow) Decide(ctx context.Context, sess domain.Session, requestID string, outcome domain.Outcome) (*domain.BloodRequest, error) {
	logger.EnterMethod("requestWorkflow.Decide", "requestID", requestID, "outcome", outcome)

	req, changed, err := s.decide(ctx, sess, requestID, outcome)
	if err != nil {
		logger.ExitMethodWithError("requestWorkflow.Decide", err, "requestID", requestID)
		return nil, err
	}

	logger.ExitMethod("requestWorkflow.Decide", "requestID", requestID, "changed", changed)
	return req, nil
}

// decide reports whether the stored status changed.
func (s *requestWorkflow) decide(ctx context.Context, sess domain.Session, requestID string, outcome domain.Outcome) (*domain.BloodRequest, bool, error) {
	hospitalID, ok := sess.Hospital()
	if !ok {
		return nil, false, domain.ErrUnauthenticated
	}
	if _, err := outcome.Target(); err != nil {
		return nil, false, err
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, storageFailure("load request", err)
	}

	if req.HospitalID != hospitalID {
		logger.Warn("hospital tried to decide a foreign request", "requestID", requestID, "hospitalID", hospitalID)
		return nil, false, domain.ErrUnauthorized
	}

	previous := req.Status
	changed, err := req.Apply(outcome)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return req, false, nil
	}

	if err := s.requestRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, storageFailure("update request status", err)
	}

	s.metrics.IncrementDecision(string(outcome))
	logger.Info("blood request decided", "requestID", req.ID, "from", previous, "to", req.Status, "hospitalID", hospitalID)
	return req, true, nil
}

func (s *requestWorkflow) ListForHospital(ctx context.Context, hospitalID int64) (*domain.HospitalRequests, error) {
	var out domain.HospitalRequests
	lists := []struct {
		status domain.RequestStatus
		dst    *[]domain.BloodRequest
	}{
		{domain.RequestStatusPending, &out.Pending},
		{domain.RequestStatusApproved, &out.Approved},
		{domain.RequestStatusRejected, &out.Rejected},
	}
	for _, l := range lists {
		reqs, err := s.requestRepo.ListByHospital(ctx, hospitalID, l.status)
		if err != nil {
			return nil, storageFailure("list hospital requests", err)
		}
		*l.dst = nonNil(reqs)
	}
	return &out, nil
}

func (s *requestWorkflow) ListForRequester(ctx context.Context, phone string) (*domain.RequesterRequests, error) {
	all, err := s.requestRepo.ListByRequester(ctx, phone)
	if err != nil {
		return nil, storageFailure("list requester requests", err)
	}

	approved := []domain.BloodRequest{}
	for _, r := range all {
		if r.Status == domain.RequestStatusApproved {
			approved = append(approved, r)
		}
	}
	return &domain.RequesterRequests{All: nonNil(all), Approved: approved}, nil
}

func nonNil(reqs []domain.BloodRequest) []domain.BloodRequest {
	if reqs == nil {
		return []domain.BloodRequest{}
	}
	return reqs
}
