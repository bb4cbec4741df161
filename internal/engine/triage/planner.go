package triage

import (
	"math"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"go.trai.ch/zerr"
)

// ValidateMultiplier rejects multipliers that cannot scale anything.
// Values at or below zero are errors; values below one are accepted, since
// shrinking a failing request is allowed when explicitly asked for.
func ValidateMultiplier(m float64) error {
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return zerr.With(domain.ErrInvalidMultiplier, "multiplier", m)
	}
	return nil
}

// PlanRestart decides whether one finding is eligible for restart and
// computes the scaled resource request. Eligibility requires a matched
// record and a remediable failure kind; Other failures and unmatched
// targets are never auto-restarted. The decision carries the finding's
// dependents for cascading restart.
//
// Planning has no side effects and no memory: identical inputs always
// produce identical decisions.
func PlanRestart(target domain.Target, f domain.Finding, multiplier float64) (*domain.RestartDecision, error) {
	if err := ValidateMultiplier(multiplier); err != nil {
		return nil, err
	}

	d := &domain.RestartDecision{
		Target:     f.Target,
		Kind:       f.Kind,
		Dependents: f.Dependents,
	}

	if f.Record == nil || !f.Kind.Restartable() {
		return d, nil
	}
	d.Eligible = true

	scaled := target.Resources
	switch f.Kind {
	case domain.FailureTimeout:
		scaled.Walltime = scaled.Walltime.Scale(multiplier)
	case domain.FailureOutOfMemory:
		scaled.Memory = scaled.Memory.Scale(multiplier)
	case domain.FailureFileSystem, domain.FailureOther:
		// No scaling signal: resubmit with the request unchanged.
	}

	if scaled != target.Resources {
		d.Resources = &scaled
	}
	return d, nil
}
