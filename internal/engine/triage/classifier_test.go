package triage_test

import (
	"testing"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/engine/triage"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	c := triage.NewClassifier()

	tests := []struct {
		name string
		rec  *domain.AccountingRecord
		want domain.FailureKind
	}{
		{
			name: "nil record",
			rec:  nil,
			want: domain.FailureOther,
		},
		{
			name: "timeout state",
			rec:  &domain.AccountingRecord{State: domain.StateTimeout},
			want: domain.FailureTimeout,
		},
		{
			name: "oom state",
			rec:  &domain.AccountingRecord{State: domain.StateOutOfMemory},
			want: domain.FailureOutOfMemory,
		},
		{
			name: "failed at memory request",
			rec: &domain.AccountingRecord{
				State:  domain.StateFailed,
				ReqMem: domain.Memory(4 * domain.GiB),
				MaxRSS: domain.Memory(4 * domain.GiB),
			},
			want: domain.FailureOutOfMemory,
		},
		{
			name: "failed below memory request",
			rec: &domain.AccountingRecord{
				State:    domain.StateFailed,
				ReqMem:   domain.Memory(4 * domain.GiB),
				MaxRSS:   domain.Memory(2 * domain.GiB),
				ExitCode: 1,
			},
			want: domain.FailureOther,
		},
		{
			name: "bus error signal",
			rec: &domain.AccountingRecord{
				State:  domain.StateFailed,
				Signal: 7,
			},
			want: domain.FailureFileSystem,
		},
		{
			name: "eio exit code",
			rec: &domain.AccountingRecord{
				State:    domain.StateFailed,
				ExitCode: 5,
			},
			want: domain.FailureFileSystem,
		},
		{
			name: "stale nfs handle exit code",
			rec: &domain.AccountingRecord{
				State:    domain.StateFailed,
				ExitCode: 116,
			},
			want: domain.FailureFileSystem,
		},
		{
			name: "plain failure",
			rec: &domain.AccountingRecord{
				State:    domain.StateFailed,
				ExitCode: 1,
			},
			want: domain.FailureOther,
		},
		{
			name: "node failure",
			rec:  &domain.AccountingRecord{State: domain.StateNodeFail},
			want: domain.FailureOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.Classify(tt.rec))
		})
	}
}

func TestClassifier_TimeoutBeatsMemory(t *testing.T) {
	c := triage.NewClassifier()
	rec := &domain.AccountingRecord{
		State:  domain.StateTimeout,
		ReqMem: domain.Memory(4 * domain.GiB),
		MaxRSS: domain.Memory(4 * domain.GiB),
	}
	require.Equal(t, domain.FailureTimeout, c.Classify(rec))
}

func TestClassifier_MemoryBeatsFileSystem(t *testing.T) {
	c := triage.NewClassifier()
	rec := &domain.AccountingRecord{
		State:    domain.StateFailed,
		ReqMem:   domain.Memory(4 * domain.GiB),
		MaxRSS:   domain.Memory(4 * domain.GiB),
		ExitCode: 5,
	}
	require.Equal(t, domain.FailureOutOfMemory, c.Classify(rec))
}

func TestClassifier_SignalBeatsExitCode(t *testing.T) {
	c := triage.NewClassifier(triage.WithSignalKind(42, domain.FailureOther))
	rec := &domain.AccountingRecord{
		State:    domain.StateFailed,
		Signal:   42,
		ExitCode: 5,
	}
	require.Equal(t, domain.FailureOther, c.Classify(rec))
}

func TestClassifier_CustomSignatures(t *testing.T) {
	c := triage.NewClassifier(
		triage.WithSignalKind(10, domain.FailureFileSystem),
		triage.WithExitCodeKind(99, domain.FailureFileSystem),
	)

	require.Equal(t, domain.FailureFileSystem, c.Classify(&domain.AccountingRecord{
		State:  domain.StateFailed,
		Signal: 10,
	}))
	require.Equal(t, domain.FailureFileSystem, c.Classify(&domain.AccountingRecord{
		State:    domain.StateFailed,
		ExitCode: 99,
	}))
}

func TestClassifier_OptionsDoNotMutateDefaults(t *testing.T) {
	_ = triage.NewClassifier(triage.WithExitCodeKind(5, domain.FailureOther))

	base := triage.NewClassifier()
	rec := &domain.AccountingRecord{State: domain.StateFailed, ExitCode: 5}
	require.Equal(t, domain.FailureFileSystem, base.Classify(rec))
}
