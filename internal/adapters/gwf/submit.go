package gwf

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// restartOverridesFile carries the scaled resource requests for the next
// submission. The runtime applies it on top of the workflow definition.
const restartOverridesFile = "restart-overrides.yaml"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// RunFunc executes the host runtime CLI. Injectable for tests.
type RunFunc func(ctx context.Context, dir, name string, args ...string) error

// Submitter implements ports.Submitter by invoking the gwf CLI.
type Submitter struct {
	binary string
	run    RunFunc
	logger ports.Logger
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithBinary overrides the host runtime binary name.
func WithBinary(binary string) SubmitterOption {
	return func(s *Submitter) {
		s.binary = binary
	}
}

// WithRunFunc overrides the command runner.
func WithRunFunc(run RunFunc) SubmitterOption {
	return func(s *Submitter) {
		s.run = run
	}
}

// NewSubmitter creates a Submitter that shells out to gwf.
func NewSubmitter(logger ports.Logger, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		binary: "gwf",
		run:    runHostCLI,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resourceOverride is one target's scaled request in the overrides file.
type resourceOverride struct {
	Walltime string `yaml:"walltime,omitempty"`
	Memory   string `yaml:"memory,omitempty"`
	Cores    int    `yaml:"cores,omitempty"`
	Nodes    int    `yaml:"nodes,omitempty"`
}

// Resubmit writes the scaled resource overrides and asks the runtime to run
// the eligible targets again. The runtime cascades to their dependents, so
// only the eligible roots are passed on the command line. A plan with no
// eligible decision is a no-op.
func (s *Submitter) Resubmit(ctx context.Context, dir string, decisions []domain.RestartDecision) error {
	var endpoints []string
	overrides := make(map[string]resourceOverride)

	for _, d := range decisions {
		if !d.Eligible {
			continue
		}
		endpoints = append(endpoints, d.Target.String())
		if d.Resources != nil {
			o := resourceOverride{
				Cores: d.Resources.Cores,
				Nodes: d.Resources.Nodes,
			}
			if d.Resources.Walltime != 0 {
				o.Walltime = d.Resources.Walltime.String()
			}
			if d.Resources.Memory != 0 {
				o.Memory = d.Resources.Memory.String()
			}
			overrides[d.Target.String()] = o
		}
	}

	if len(endpoints) == 0 {
		s.logger.Info("no restartable targets")
		return nil
	}

	if len(overrides) > 0 {
		if err := s.writeOverrides(dir, overrides); err != nil {
			return err
		}
	}

	s.logger.Info("resubmitting targets", "count", len(endpoints))

	args := append([]string{"run"}, endpoints...)
	if err := s.run(ctx, dir, s.binary, args...); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrResubmitFailed.Error()),
			"targets", strings.Join(endpoints, ","),
		)
	}
	return nil
}

func (s *Submitter) writeOverrides(dir string, overrides map[string]resourceOverride) error {
	data, err := yaml.Marshal(map[string]map[string]resourceOverride{"targets": overrides})
	if err != nil {
		return zerr.Wrap(err, domain.ErrResubmitFailed.Error())
	}

	path := filepath.Join(dir, stateDir, restartOverridesFile)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrResubmitFailed.Error())
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.Wrap(err, domain.ErrResubmitFailed.Error())
	}
	return nil
}

func runHostCLI(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binary is operator configured
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return zerr.With(zerr.Wrap(err, "command failed"), "stderr", msg)
		}
		return zerr.Wrap(err, "command failed")
	}
	return nil
}
