// Package gwf adapts the host workflow runtime: it reads the runtime's
// bookkeeping below .gwf/ and hands restart plans back through the gwf CLI.
package gwf

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runtime state files maintained by the gwf Slurm backend.
const (
	stateDir         = ".gwf"
	trackedJobsFile  = "slurm-backend-tracked.json"
	targetStatusFile = "target-status.json"
)

// statusFailed is the status string the runtime records for failed targets.
const statusFailed = "failed"

// State implements ports.StateStore over the runtime's JSON state files.
type State struct{}

// NewState creates a new State reader.
func NewState() *State {
	return &State{}
}

// TrackedJobs returns the target name to scheduler job ID mapping.
// A missing state file means nothing was submitted yet and yields an empty
// map; a corrupt file is an error.
func (s *State) TrackedJobs(dir string) (map[string]string, error) {
	jobs := make(map[string]string)
	if err := readStateFile(filepath.Join(dir, stateDir, trackedJobsFile), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FailedTargets returns the names of targets the runtime reports as failed,
// sorted for deterministic processing.
func (s *State) FailedTargets(dir string) ([]string, error) {
	statuses := make(map[string]string)
	if err := readStateFile(filepath.Join(dir, stateDir, targetStatusFile), &statuses); err != nil {
		return nil, err
	}

	var failed []string
	for name, status := range statuses {
		if strings.EqualFold(status, statusFailed) {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed, nil
}

func readStateFile(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is rooted in the project dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(
			zerr.Wrap(err, domain.ErrStateReadFailed.Error()),
			"path", path,
		)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrStateParseFailed.Error()),
			"path", path,
		)
	}
	return nil
}
