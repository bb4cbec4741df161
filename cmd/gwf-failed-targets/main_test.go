package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_NoFailedTargets(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	workflow := `targets:
  align_sample1:
    walltime: "01:00:00"
    memory: 4G
`
	err := os.WriteFile(filepath.Join(tmpDir, "workflow.yaml"), []byte(workflow), 0o600)
	require.NoError(t, err)

	// No .gwf state below the project dir: nothing was submitted, nothing
	// failed, and the accounting binary is never invoked.
	os.Args = []string{"gwf-failed-targets", "-C", tmpDir}

	require.Equal(t, 0, run())
}

func TestRun_MissingWorkflow(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	os.Args = []string{"gwf-failed-targets", "-C", t.TempDir()}

	require.Equal(t, 1, run())
}
