package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// Outcome is a hospital's verdict on a blood request.
type Outcome string

const (
	OutcomeApprove Outcome = "APPROVE"
	OutcomeReject  Outcome = "REJECT"
)

// BloodRequest is a requester's ask for blood, validated by the hospital it names.
type BloodRequest struct {
	ID             string        `json:"id"`
	PatientName    string        `json:"patient_name"`
	RequesterPhone string        `json:"requester_phone"`
	HospitalName   string        `json:"hospital_name"`
	HospitalID     int64         `json:"hospital_id"`
	BloodGroup     string        `json:"blood_group"`
	Location       string        `json:"location"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Target returns the status an outcome leads to.
func (o Outcome) Target() (RequestStatus, error) {
	switch o {
	case OutcomeApprove:
		return RequestStatusApproved, nil
	case OutcomeReject:
		return RequestStatusRejected, nil
	}
	return "", ErrInvalidInput
}

// IsTerminal reports whether no other status can follow s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// Apply moves the request to the status implied by o. Applying the outcome a
// request already carries is a no-op; changing a decided request is refused.
// The returned bool is false when nothing changed.
func (r *BloodRequest) Apply(o Outcome) (bool, error) {
	target, err := o.Target()
	if err != nil {
		return false, err
	}
	if r.Status == target {
		return false, nil
	}
	if r.Status.IsTerminal() {
		return false, ErrInvalidTransition
	}
	r.Status = target
	return true, nil
}

// HospitalRequests partitions the requests addressed to one hospital by status.
type HospitalRequests struct {
	Pending  []BloodRequest `json:"pending"`
	Approved []BloodRequest `json:"approved"`
	Rejected []BloodRequest `json:"rejected"`
}

// RequesterRequests holds everything a requester owns and the approved subset.
type RequesterRequests struct {
	All      []BloodRequest `json:"all"`
	Approved []BloodRequest `json:"approved"`
}
