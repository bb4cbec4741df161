package ports

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
)

// Submitter hands a restart plan back to the host runtime for execution.
// The core never resubmits anything itself: producing a RestartDecision has
// no side effect until the host consumes it here.
//
//go:generate go run go.uber.org/mock/mockgen -source=submitter.go -destination=mocks/mock_submitter.go -package=mocks
type Submitter interface {
	// Resubmit applies the eligible decisions' scaled resource requests and
	// asks the host runtime to run the affected targets again. Ineligible
	// decisions are ignored.
	Resubmit(ctx context.Context, dir string, decisions []domain.RestartDecision) error
}
