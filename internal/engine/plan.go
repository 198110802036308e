package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Step is one node of a plan with the edges registered for it.
type Step struct {
	Node    *Node    `json:"node" yaml:"node"`
	Depends []string `json:"depends,omitempty" yaml:"depends,omitempty"`
}

// Plan is the recorded build graph in dependency order.
type Plan struct {
	Repositories []Repository `json:"repositories,omitempty" yaml:"repositories,omitempty"`
	Steps        []Step       `json:"steps" yaml:"steps"`
}

// Plan orders the recorded nodes so every node follows the recorded nodes it
// depends on. Otherwise construction order is kept. Edges to names that were
// never recorded (files, external targets) stay on the step but do not affect
// ordering.
func (r *Recorder) Plan() (*Plan, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(r.nodes))
	plan := &Plan{Repositories: r.Repositories()}

	var visit func(n *Node, path []string) error
	visit = func(n *Node, path []string) error {
		switch state[n.Name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(append(slices.Clone(path), n.Name), " -> "))
		}
		state[n.Name] = visiting
		path = append(slices.Clone(path), n.Name)
		for _, d := range r.deps[n.Name] {
			child, ok := r.byName[d]
			if !ok {
				continue
			}
			if err := visit(child, path); err != nil {
				return err
			}
		}
		state[n.Name] = done
		plan.Steps = append(plan.Steps, Step{Node: n, Depends: r.Dependencies(n.Name)})
		return nil
	}

	for _, n := range r.nodes {
		if err := visit(n, nil); err != nil {
			return nil, err
		}
	}
	return plan, nil
}
