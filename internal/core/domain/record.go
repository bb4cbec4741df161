package domain

import "strings"

// JobState is the scheduler's reported state for a job or job step.
type JobState string

// Scheduler job states as reported by the accounting subsystem.
const (
	StateCompleted   JobState = "COMPLETED"
	StateFailed      JobState = "FAILED"
	StateTimeout     JobState = "TIMEOUT"
	StateOutOfMemory JobState = "OUT_OF_MEMORY"
	StateNodeFail    JobState = "NODE_FAIL"
	StateCancelled   JobState = "CANCELLED"
	StatePending     JobState = "PENDING"
	StateRunning     JobState = "RUNNING"
	StateUnknown     JobState = "UNKNOWN"
)

// ParseJobState normalizes a raw accounting state string.
// "CANCELLED by <uid>" collapses to StateCancelled; anything unrecognized
// becomes StateUnknown.
func ParseJobState(s string) JobState {
	state := JobState(strings.ToUpper(strings.TrimSpace(s)))
	if strings.HasPrefix(string(state), string(StateCancelled)) {
		return StateCancelled
	}
	switch state {
	case StateCompleted, StateFailed, StateTimeout, StateOutOfMemory,
		StateNodeFail, StatePending, StateRunning:
		return state
	default:
		return StateUnknown
	}
}

// Failed reports whether the state is a terminal non-success.
func (s JobState) Failed() bool {
	switch s {
	case StateFailed, StateTimeout, StateOutOfMemory, StateNodeFail, StateCancelled:
		return true
	default:
		return false
	}
}

// AccountingRecord is the scheduler's persisted summary of one job (or the
// aggregate of its steps). Immutable once parsed; owned by the pipeline run
// that produced it.
type AccountingRecord struct {
	JobID     string
	State     JobState
	ExitCode  int
	Signal    int
	Elapsed   Walltime
	Timelimit Walltime
	ReqMem    Memory
	MaxRSS    Memory
	NodeList  string
}
