package domain

// RestartDecision is the planner's verdict for one failed target.
// It is a value object recomputed on every invocation; nothing is persisted
// between runs, so the decision always reflects the latest accounting state.
type RestartDecision struct {
	Target   InternedString
	Eligible bool
	Kind     FailureKind

	// Resources is the scaled resource request for resubmission.
	// Nil when the target is not eligible or the request is unchanged.
	Resources *Resources

	// Dependents are the transitive downstream targets restarted as a
	// consequence of this target's restart. They are never independently
	// reclassified.
	Dependents []InternedString
}

// Finding ties a failed target to its accounting evidence and, when restart
// planning ran, its decision. A target with no matching record keeps a nil
// Record and classifies as Other; it is surfaced, never dropped.
type Finding struct {
	Target     InternedString
	Record     *AccountingRecord
	Kind       FailureKind
	Dependents []InternedString

	// ParseErr is set when the target's accounting line was malformed.
	ParseErr error

	// Decision is set only when restart planning was requested.
	Decision *RestartDecision
}
