package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByStatusIdempotent(t *testing.T) {
	list := []*BookingRequest{
		{ID: 1, Status: BookingStatusPending},
		{ID: 2, Status: BookingStatusApproved},
		{ID: 3, Status: BookingStatusPending},
		{ID: 4, Status: BookingStatusRejected},
	}

	first := FilterByStatus(list, BookingStatusPending)
	second := FilterByStatus(list, BookingStatusPending)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)

	// Filtering an already-filtered list changes nothing
	assert.Equal(t, first, FilterByStatus(first, BookingStatusPending))
}

func TestFilterByStatusEmptyMatchesAll(t *testing.T) {
	list := []*Agent{
		{ID: 1, Status: AgentStatusPending},
		{ID: 2, Status: AgentStatusApproved},
	}
	assert.Equal(t, list, FilterByStatus(list, ""))
}

func TestBookingActionsGatedByStatus(t *testing.T) {
	assert.Equal(t, []string{"approve", "reject"}, BookingActions(BookingStatusPending))
	assert.Empty(t, BookingActions(BookingStatusApproved))
	assert.Empty(t, BookingActions(BookingStatusRejected))
}

func TestAgentActionsGatedByStatus(t *testing.T) {
	assert.Equal(t, []string{"approve", "reject"}, AgentActions(AgentStatusPending))
	assert.Empty(t, AgentActions(AgentStatusApproved))
	assert.Empty(t, AgentActions(AgentStatusRejected))
}

func TestServiceRequestActions(t *testing.T) {
	assert.Equal(t, []string{"start", "complete", "cancel"}, ServiceRequestActions(ServiceStatusReceived))
	assert.Equal(t, []string{"complete", "cancel"}, ServiceRequestActions(ServiceStatusInProgress))
	assert.Empty(t, ServiceRequestActions(ServiceStatusCompleted))
	assert.Empty(t, ServiceRequestActions(ServiceStatusCancelled))
}

func TestServiceRequestTransitions(t *testing.T) {
	assert.True(t, CanTransitionServiceRequest(ServiceStatusReceived, ServiceStatusInProgress))
	assert.True(t, CanTransitionServiceRequest(ServiceStatusReceived, ServiceStatusCancelled))
	assert.True(t, CanTransitionServiceRequest(ServiceStatusInProgress, ServiceStatusCompleted))
	assert.True(t, CanTransitionServiceRequest(ServiceStatusInProgress, ServiceStatusCancelled))

	// Terminal states allow nothing
	assert.False(t, CanTransitionServiceRequest(ServiceStatusCompleted, ServiceStatusCancelled))
	assert.False(t, CanTransitionServiceRequest(ServiceStatusCancelled, ServiceStatusInProgress))

	// No going backwards
	assert.False(t, CanTransitionServiceRequest(ServiceStatusInProgress, ServiceStatusReceived))
}
