// Package domain contains the core domain models for failure triage of
// workflow targets: the target dependency graph, scheduler accounting
// records, failure kinds and restart decisions.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents the host workflow's target dependency graph.
// The core treats it as a queryable relation: it only ever asks for
// targets and their (transitive) dependents.
type Graph struct {
	targets    map[InternedString]Target
	dependents map[InternedString][]InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets:    make(map[InternedString]Target),
		dependents: make(map[InternedString][]InternedString),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = *t
	for _, dep := range t.Dependencies {
		g.dependents[dep] = append(g.dependents[dep], t.Name)
	}
	return nil
}

// Target returns the target with the given name.
func (g *Graph) Target(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Len returns the number of targets in the graph.
func (g *Graph) Len() int {
	return len(g.targets)
}

// All returns an iterator over all targets in unspecified order.
func (g *Graph) All() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, t := range g.targets {
			if !yield(t) {
				return
			}
		}
	}
}

// Validate checks that every declared dependency exists and that the
// graph is acyclic, using a depth-first topological traversal.
func (g *Graph) Validate() error {
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range target.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for name := range g.targets {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Dependents returns the direct dependents of the given target.
func (g *Graph) Dependents(name InternedString) []InternedString {
	return g.dependents[name]
}

// TransitiveDependents returns every target downstream of the given one,
// sorted by name. The target itself is not included.
func (g *Graph) TransitiveDependents(name InternedString) []InternedString {
	seen := make(map[InternedString]bool)
	stack := slices.Clone(g.dependents[name])

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, g.dependents[n]...)
	}

	res := make([]InternedString, 0, len(seen))
	for n := range seen {
		res = append(res, n)
	}
	slices.SortFunc(res, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
