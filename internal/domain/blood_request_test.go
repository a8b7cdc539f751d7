package domain_test

import (
	"testing"

	"lifeline/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBloodRequest_Apply(t *testing.T) {
	t.Run("PendingToApproved", func(t *testing.T) {
		r := &domain.BloodRequest{Status: domain.RequestStatusPending}
		changed, err := r.Apply(domain.OutcomeApprove)
		assert.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.RequestStatusApproved, r.Status)
	})

	t.Run("PendingToRejected", func(t *testing.T) {
		r := &domain.BloodRequest{Status: domain.RequestStatusPending}
		changed, err := r.Apply(domain.OutcomeReject)
		assert.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.RequestStatusRejected, r.Status)
	})

	t.Run("SameOutcomeTwice", func(t *testing.T) {
		r := &domain.BloodRequest{Status: domain.RequestStatusApproved}
		changed, err := r.Apply(domain.OutcomeApprove)
		assert.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, domain.RequestStatusApproved, r.Status)
	})

	t.Run("ConflictingOutcome", func(t *testing.T) {
		r := &domain.BloodRequest{Status: domain.RequestStatusRejected}
		changed, err := r.Apply(domain.OutcomeApprove)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.False(t, changed)
		assert.Equal(t, domain.RequestStatusRejected, r.Status)
	})

	t.Run("UnknownOutcome", func(t *testing.T) {
		r := &domain.BloodRequest{Status: domain.RequestStatusPending}
		_, err := r.Apply(domain.Outcome("MAYBE"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, domain.RequestStatusPending, r.Status)
	})
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.RequestStatusPending.IsTerminal())
	assert.True(t, domain.RequestStatusApproved.IsTerminal())
	assert.True(t, domain.RequestStatusRejected.IsTerminal())
}
