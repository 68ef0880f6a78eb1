package constants

import "testing"

func TestCanTransition_AllowsForwardPath(t *testing.T) {
	cases := []struct {
		from JobStatus
		to   JobStatus
	}{
		{JobStatusPending, JobStatusFetching},
		{JobStatusFetching, JobStatusMerging},
		{JobStatusMerging, JobStatusCompleted},
		{JobStatusPending, JobStatusFailed},
		{JobStatusFetching, JobStatusFailed},
		{JobStatusMerging, JobStatusFailed},
		{JobStatusPending, JobStatusCancelled},
		{JobStatusFetching, JobStatusCancelled},
		{JobStatusMerging, JobStatusCancelled},
	}

	for _, tc := range cases {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected transition %q -> %q to be allowed", tc.from, tc.to)
		}
	}
}

func TestCanTransition_RejectsIllegalMoves(t *testing.T) {
	cases := []struct {
		from JobStatus
		to   JobStatus
	}{
		{JobStatusPending, JobStatusMerging},   // skips fetching
		{JobStatusPending, JobStatusCompleted}, // skips everything
		{JobStatusFetching, JobStatusPending},  // backwards
		{JobStatusMerging, JobStatusFetching},  // backwards
		{JobStatusCompleted, JobStatusFailed},  // terminal is final
		{JobStatusCompleted, JobStatusCancelled},
		{JobStatusFailed, JobStatusFetching},
		{JobStatusCancelled, JobStatusPending},
		{JobStatus("bogus"), JobStatusFetching},
	}

	for _, tc := range cases {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected transition %q -> %q to be rejected", tc.from, tc.to)
		}
	}
}

func TestJobStatus_Terminal(t *testing.T) {
	terminal := []JobStatus{JobStatusCompleted, JobStatusFailed, JobStatusCancelled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %q to be terminal", s)
		}
	}
	active := []JobStatus{JobStatusPending, JobStatusFetching, JobStatusMerging}
	for _, s := range active {
		if s.Terminal() {
			t.Errorf("expected %q to be non-terminal", s)
		}
	}
}
