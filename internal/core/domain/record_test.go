package domain_test

import (
	"testing"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
)

func TestParseJobState(t *testing.T) {
	tests := []struct {
		input string
		want  domain.JobState
	}{
		{"COMPLETED", domain.StateCompleted},
		{"FAILED", domain.StateFailed},
		{"TIMEOUT", domain.StateTimeout},
		{"OUT_OF_MEMORY", domain.StateOutOfMemory},
		{"NODE_FAIL", domain.StateNodeFail},
		{"CANCELLED", domain.StateCancelled},
		{"CANCELLED by 1042", domain.StateCancelled},
		{"PENDING", domain.StatePending},
		{"running", domain.StateRunning},
		{" failed ", domain.StateFailed},
		{"BOOT_FAIL", domain.StateUnknown},
		{"", domain.StateUnknown},
	}

	for _, tt := range tests {
		if got := domain.ParseJobState(tt.input); got != tt.want {
			t.Errorf("ParseJobState(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestJobState_Failed(t *testing.T) {
	failed := []domain.JobState{
		domain.StateFailed, domain.StateTimeout, domain.StateOutOfMemory,
		domain.StateNodeFail, domain.StateCancelled,
	}
	for _, s := range failed {
		if !s.Failed() {
			t.Errorf("%v.Failed() = false, want true", s)
		}
	}

	ok := []domain.JobState{
		domain.StateCompleted, domain.StatePending, domain.StateRunning, domain.StateUnknown,
	}
	for _, s := range ok {
		if s.Failed() {
			t.Errorf("%v.Failed() = true, want false", s)
		}
	}
}
