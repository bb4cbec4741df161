package ports

import "github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"

// Reporter consumes the final findings and renders them for the user,
// either as a table on stdout or as structured records in a log file.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Emit(findings []domain.Finding) error
}
