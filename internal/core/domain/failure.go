package domain

// FailureKind classifies the cause of a failed target. It is a closed
// enumeration so that classification and restart-eligibility logic stay
// exhaustive.
type FailureKind int

const (
	// FailureOther is the default bucket: application-level errors and
	// anything without a recognized resource or I/O signature.
	FailureOther FailureKind = iota
	// FailureTimeout marks jobs killed for exceeding their time limit.
	FailureTimeout
	// FailureOutOfMemory marks jobs killed by the OOM killer or that hit
	// their memory request at failure.
	FailureOutOfMemory
	// FailureFileSystem marks jobs whose exit signature matches a known
	// filesystem I/O failure.
	FailureFileSystem
)

// String returns the display name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "Timeout"
	case FailureOutOfMemory:
		return "OutOfMemory"
	case FailureFileSystem:
		return "FileSystem"
	default:
		return "Other"
	}
}

// Restartable reports whether this failure kind is remediable by
// resubmission. Other failures are never auto-restarted: their causes are
// not reliably fixed by resource scaling.
func (k FailureKind) Restartable() bool {
	switch k {
	case FailureTimeout, FailureOutOfMemory, FailureFileSystem:
		return true
	case FailureOther:
		return false
	default:
		return false
	}
}
