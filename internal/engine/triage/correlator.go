package triage

import (
	"sort"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
)

// Correlate associates each failed target with its accounting record and its
// transitive dependents. A target with no tracked job ID or no record in the
// batch is surfaced with a nil record: it is reported, never dropped. A
// target whose record was malformed carries the parse error instead.
//
// Findings are ordered by target name so output is deterministic.
func Correlate(
	graph *domain.Graph,
	failed []string,
	jobIDs map[string]string,
	records map[string]*domain.AccountingRecord,
	parseErrs map[string]error,
) []domain.Finding {
	names := make([]string, len(failed))
	copy(names, failed)
	sort.Strings(names)

	findings := make([]domain.Finding, 0, len(names))
	for _, name := range names {
		interned := domain.NewInternedString(name)
		f := domain.Finding{
			Target:     interned,
			Dependents: graph.TransitiveDependents(interned),
		}

		if jobID, tracked := jobIDs[name]; tracked {
			if rec, ok := records[jobID]; ok {
				f.Record = rec
			} else if err, bad := parseErrs[jobID]; bad {
				f.ParseErr = err
			}
		}

		findings = append(findings, f)
	}
	return findings
}
