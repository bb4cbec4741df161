// Package ports defines the core interfaces for the application.
package ports

import "context"

// AccountingSource queries the scheduler's accounting subsystem for a batch
// of job identifiers and returns the raw delimited text, one line per
// job/step. The query is the pipeline's single suspension point: a failure
// here is fatal for the whole run, never a partial result.
//
//go:generate go run go.uber.org/mock/mockgen -source=accounting.go -destination=mocks/mock_accounting.go -package=mocks
type AccountingSource interface {
	Query(ctx context.Context, jobIDs []string) (string, error)
}
