package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_Valid(t *testing.T) {
	for _, s := range []RequestStatus{
		RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled,
	} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, RequestStatus("done").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestStatusAccepted, RequestStatusInProgress, true},
		{RequestStatusAccepted, RequestStatusCompleted, true},
		{RequestStatusAccepted, RequestStatusRejected, true},
		{RequestStatusAccepted, RequestStatusCancelled, true},
		{RequestStatusAccepted, RequestStatusPending, false},
		{RequestStatusAccepted, RequestStatusAccepted, false},
		{RequestStatusInProgress, RequestStatusCompleted, true},
		{RequestStatusInProgress, RequestStatusCancelled, true},
		{RequestStatusInProgress, RequestStatusRejected, false},
		{RequestStatusPending, RequestStatusAccepted, false},
		{RequestStatusCompleted, RequestStatusCancelled, false},
		{RequestStatusCancelled, RequestStatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatus_Terminal(t *testing.T) {
	assert.True(t, RequestStatusCompleted.Terminal())
	assert.True(t, RequestStatusRejected.Terminal())
	assert.True(t, RequestStatusCancelled.Terminal())
	assert.False(t, RequestStatusAccepted.Terminal())
	assert.False(t, RequestStatusInProgress.Terminal())
	assert.False(t, RequestStatusPending.Terminal())
}

func TestServiceRequest_AssignedTo(t *testing.T) {
	helperID := "h-1"
	req := &ServiceRequest{HelperID: &helperID}
	assert.True(t, req.AssignedTo("h-1"))
	assert.False(t, req.AssignedTo("h-2"))
	assert.False(t, (&ServiceRequest{}).AssignedTo(""))
}

func TestHelper_Eligible(t *testing.T) {
	h := &Helper{CategoryID: "plumber", Available: true, Approved: true}
	assert.True(t, h.Eligible("plumber"))
	assert.False(t, h.Eligible("painter"))

	h.Approved = false
	assert.False(t, h.Eligible("plumber"))

	h.Approved, h.Available = true, false
	assert.False(t, h.Eligible("plumber"))

	var nilHelper *Helper
	assert.False(t, nilHelper.Eligible("plumber"))
}

func TestActor(t *testing.T) {
	a := Actor{ID: "h-1", Role: RoleHelper}
	assert.True(t, a.Is(RoleHelper, "h-1"))
	assert.False(t, a.Is(RoleUser, "h-1"))
	assert.False(t, Actor{Role: RoleHelper}.Is(RoleHelper, ""))
	assert.True(t, Actor{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Role("root").Valid())
}
