package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/talkbuild/talkbuild/internal/params"
)

var (
	// ErrDuplicateTarget is returned when two nodes share a target name.
	ErrDuplicateTarget = errors.New("duplicate target")

	// ErrDependencyCycle is returned by Plan when dependency edges loop.
	ErrDependencyCycle = errors.New("dependency cycle")
)

// Recorder is an Engine that records nodes instead of building them.
// It is not safe for concurrent use.
type Recorder struct {
	nodes  []*Node
	byName map[string]*Node
	deps   map[string][]string
	repos  []Repository
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		byName: make(map[string]*Node),
		deps:   make(map[string][]string),
	}
}

func (r *Recorder) Library(name string, srcs []string, p *params.Params) (*Node, error) {
	return r.add(KindLibrary, name, srcs, p)
}

func (r *Recorder) Object(name string, srcs []string, p *params.Params) (*Node, error) {
	return r.add(KindObject, name, srcs, p)
}

func (r *Recorder) TestProgram(name string, srcs []string, p *params.Params) (*Node, error) {
	return r.add(KindTestProgram, name, srcs, p)
}

func (r *Recorder) Program(name string, srcs []string, p *params.Params) (*Node, error) {
	return r.add(KindProgram, name, srcs, p)
}

// Depends appends deps to the edges of name, skipping ones already recorded.
func (r *Recorder) Depends(name string, deps []string) error {
	if name == "" {
		return fmt.Errorf("registering dependencies %v: empty target name", deps)
	}
	for _, d := range deps {
		if !slices.Contains(r.deps[name], d) {
			r.deps[name] = append(r.deps[name], d)
		}
	}
	return nil
}

func (r *Recorder) AddRepository(at, path string) error {
	if at == "" || path == "" {
		return fmt.Errorf("repository mount needs both a mount point and a path (at=%q, path=%q)", at, path)
	}
	r.repos = append(r.repos, Repository{At: at, Path: path})
	return nil
}

// Nodes returns the recorded nodes in construction order.
func (r *Recorder) Nodes() []*Node { return slices.Clone(r.nodes) }

// Node returns the node recorded under name.
func (r *Recorder) Node(name string) (*Node, bool) {
	n, ok := r.byName[name]
	return n, ok
}

// Dependencies returns the edges registered for name.
func (r *Recorder) Dependencies(name string) []string { return slices.Clone(r.deps[name]) }

// Repositories returns the mounted repositories.
func (r *Recorder) Repositories() []Repository { return slices.Clone(r.repos) }

func (r *Recorder) add(kind Kind, name string, srcs []string, p *params.Params) (*Node, error) {
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w %q", ErrDuplicateTarget, name)
	}
	if p == nil {
		p = params.New()
	}
	n := &Node{
		ID:     uuid.New(),
		Name:   name,
		Kind:   kind,
		Srcs:   slices.Clone(srcs),
		Params: p.Clone(),
	}
	r.nodes = append(r.nodes, n)
	r.byName[name] = n
	return n, nil
}
