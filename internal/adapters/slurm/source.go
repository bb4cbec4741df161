// Package slurm queries the Slurm accounting subsystem via sacct and parses
// its parsable output into domain accounting records.
package slurm

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"go.trai.ch/zerr"
)

// sacctFields is the accounting field set requested for every query.
// The parser keys on the header line, so order here is not significant.
var sacctFields = []string{
	"JobID",
	"NodeList",
	"NNodes",
	"NCPUS",
	"ReqMem",
	"MaxRSS",
	"Timelimit",
	"Elapsed",
	"State",
	"ExitCode",
}

// RunFunc executes the accounting command and returns its stdout.
// Injectable for tests.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Source implements ports.AccountingSource by shelling out to sacct.
// A Source is cheap and stateless; the external call is scoped to Query.
type Source struct {
	binary string
	run    RunFunc
	logger ports.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithBinary overrides the accounting binary name.
func WithBinary(binary string) Option {
	return func(s *Source) {
		s.binary = binary
	}
}

// WithRunFunc overrides the command runner.
func WithRunFunc(run RunFunc) Option {
	return func(s *Source) {
		s.run = run
	}
}

// NewSource creates an accounting source backed by the sacct binary.
func NewSource(logger ports.Logger, opts ...Option) *Source {
	s := &Source{
		binary: "sacct",
		run:    runCommand,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query fetches accounting records for the given job IDs as one batch.
// Any command failure is fatal for the run: partial output is never returned.
func (s *Source) Query(ctx context.Context, jobIDs []string) (string, error) {
	if len(jobIDs) == 0 {
		return "", nil
	}

	args := []string{
		"--jobs", strings.Join(jobIDs, ","),
		"--format", strings.Join(sacctFields, ","),
		"--parsable2",
	}

	s.logger.Info("querying accounting records", "jobs", len(jobIDs))

	out, err := s.run(ctx, s.binary, args...)
	if err != nil {
		return "", zerr.With(
			zerr.Wrap(err, domain.ErrAccountingQueryFailed.Error()),
			"binary", s.binary,
		)
	}

	return string(out), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binary is operator configured
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, zerr.With(zerr.Wrap(err, "command failed"), "stderr", msg)
		}
		return nil, zerr.Wrap(err, "command failed")
	}
	return stdout.Bytes(), nil
}
