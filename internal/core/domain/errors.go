package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when attempting to add a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the target dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not found in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrInvalidMultiplier is returned when the resource multiplier is zero or negative.
	ErrInvalidMultiplier = zerr.New("multiplier must be greater than zero")

	// ErrInvalidWalltime is returned when a walltime string cannot be parsed.
	ErrInvalidWalltime = zerr.New("invalid walltime format")

	// ErrInvalidMemory is returned when a memory size string cannot be parsed.
	ErrInvalidMemory = zerr.New("invalid memory format")

	// ErrAccountingQueryFailed is returned when the scheduler accounting query fails.
	// This is fatal for the whole run: no report or plan is produced from partial data.
	ErrAccountingQueryFailed = zerr.New("accounting query failed")

	// ErrMalformedRecord is returned for an accounting line that cannot be parsed.
	// It is recorded per job and never aborts the batch.
	ErrMalformedRecord = zerr.New("malformed accounting record")

	// ErrWorkflowReadFailed is returned when the workflow file cannot be read.
	ErrWorkflowReadFailed = zerr.New("failed to read workflow file")

	// ErrWorkflowParseFailed is returned when the workflow file cannot be parsed.
	ErrWorkflowParseFailed = zerr.New("failed to parse workflow file")

	// ErrStateReadFailed is returned when a host runtime state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read runtime state")

	// ErrStateParseFailed is returned when a host runtime state file cannot be parsed.
	ErrStateParseFailed = zerr.New("failed to parse runtime state")

	// ErrResubmitFailed is returned when handing the restart plan to the host runtime fails.
	ErrResubmitFailed = zerr.New("resubmission failed")

	// ErrReportWriteFailed is returned when emitting the report fails.
	ErrReportWriteFailed = zerr.New("failed to write report")
)
