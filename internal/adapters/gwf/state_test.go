package gwf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/gwf"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeStateFile(t *testing.T, dir, name, content string) {
	t.Helper()
	stateDir := filepath.Join(dir, ".gwf")
	require.NoError(t, os.MkdirAll(stateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, name), []byte(content), 0o600))
}

func TestState_TrackedJobs(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, "slurm-backend-tracked.json",
		`{"align_sample1": "1001", "sort_sample1": "1002"}`)

	jobs, err := gwf.NewState().TrackedJobs(dir)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"align_sample1": "1001",
		"sort_sample1":  "1002",
	}, jobs)
}

func TestState_TrackedJobs_MissingFile(t *testing.T) {
	jobs, err := gwf.NewState().TrackedJobs(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, jobs)
}

func TestState_TrackedJobs_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, "slurm-backend-tracked.json", "{not json")

	_, err := gwf.NewState().TrackedJobs(dir)
	require.ErrorContains(t, err, domain.ErrStateParseFailed.Error())
}

func TestState_FailedTargets(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, "target-status.json",
		`{"qc_check": "failed", "align_sample1": "FAILED", "sort_sample1": "completed"}`)

	failed, err := gwf.NewState().FailedTargets(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"align_sample1", "qc_check"}, failed)
}

func TestState_FailedTargets_MissingFile(t *testing.T) {
	failed, err := gwf.NewState().FailedTargets(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, failed)
}
