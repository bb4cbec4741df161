// Package triage implements the failure-correlation and restart-planning
// engine: classifying accounting records, matching them to workflow targets
// and computing restart decisions.
package triage

import (
	"maps"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
)

// sigBus is a filesystem-backed mmap fault; the kernel OOM killer shows up
// as SIGKILL with MaxRSS at the request, which the memory rule covers.
const sigBus = 7

// Exit codes carrying an errno with a filesystem I/O meaning. Many tools
// propagate errno as their exit status.
const (
	exitEIO    = 5
	exitEBUSY  = 16
	exitEROFS  = 30
	exitESTALE = 116
)

// SignalTable maps termination signals and exit codes to failure kinds.
// The mapping is data rather than code: the precise signature set varies
// between sites and scheduler versions, so deployments can extend it.
type SignalTable struct {
	Signals   map[int]domain.FailureKind
	ExitCodes map[int]domain.FailureKind
}

// DefaultSignalTable returns the built-in signature set.
func DefaultSignalTable() SignalTable {
	return SignalTable{
		Signals: map[int]domain.FailureKind{
			sigBus: domain.FailureFileSystem,
		},
		ExitCodes: map[int]domain.FailureKind{
			exitEIO:    domain.FailureFileSystem,
			exitEBUSY:  domain.FailureFileSystem,
			exitEROFS:  domain.FailureFileSystem,
			exitESTALE: domain.FailureFileSystem,
		},
	}
}

// Classifier maps accounting records to failure kinds. Classification is a
// total, deterministic function: every record yields exactly one kind.
type Classifier struct {
	table SignalTable
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithSignalKind adds or overrides a signal signature.
func WithSignalKind(signal int, kind domain.FailureKind) ClassifierOption {
	return func(c *Classifier) {
		c.table.Signals[signal] = kind
	}
}

// WithExitCodeKind adds or overrides an exit code signature.
func WithExitCodeKind(code int, kind domain.FailureKind) ClassifierOption {
	return func(c *Classifier) {
		c.table.ExitCodes[code] = kind
	}
}

// NewClassifier creates a Classifier with the default signature table,
// extended by the given options.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	base := DefaultSignalTable()
	c := &Classifier{
		table: SignalTable{
			Signals:   maps.Clone(base.Signals),
			ExitCodes: maps.Clone(base.ExitCodes),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps a record to its failure kind. Scheduler-reported states are
// checked before raw exit signatures: a termination can show resource-limit
// symptoms and an I/O exit code at the same time, and the scheduler's own
// verdict is the more authoritative signal.
func (c *Classifier) Classify(rec *domain.AccountingRecord) domain.FailureKind {
	if rec == nil {
		return domain.FailureOther
	}

	if rec.State == domain.StateTimeout {
		return domain.FailureTimeout
	}

	if rec.State == domain.StateOutOfMemory {
		return domain.FailureOutOfMemory
	}
	if rec.State.Failed() && rec.ReqMem > 0 && rec.MaxRSS >= rec.ReqMem {
		return domain.FailureOutOfMemory
	}

	if rec.Signal != 0 {
		if kind, ok := c.table.Signals[rec.Signal]; ok {
			return kind
		}
	}
	if rec.ExitCode != 0 {
		if kind, ok := c.table.ExitCodes[rec.ExitCode]; ok {
			return kind
		}
	}

	return domain.FailureOther
}
