package ports

import "github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"

// WorkflowLoader loads the host workflow's target graph from a project
// directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=workflow.go -destination=mocks/mock_workflow.go -package=mocks
type WorkflowLoader interface {
	// Load reads the workflow definition below dir and returns the
	// validated target graph.
	Load(dir string) (*domain.Graph, error)
}

// StateStore exposes the host runtime's bookkeeping for a project: which
// scheduler job each target was submitted as, and which targets the runtime
// reports as failed.
type StateStore interface {
	// TrackedJobs returns the target name to scheduler job ID mapping.
	// A missing state file yields an empty map, not an error.
	TrackedJobs(dir string) (map[string]string, error)

	// FailedTargets returns the names of targets the host runtime reports
	// as failed.
	FailedTargets(dir string) ([]string, error)
}
