package domain

// Resources is the scheduler resource request attached to a target.
type Resources struct {
	Walltime Walltime
	Memory   Memory
	Cores    int
	Nodes    int
}

// Target represents a unit of work in the host workflow runtime.
// The core holds a read-only view: restart plans return new Resources
// rather than mutating the target in place.
type Target struct {
	Name         InternedString
	Resources    Resources
	Dependencies []InternedString
}
