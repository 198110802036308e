package manifest

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/params"
)

// File is a parsed declaration file.
type File struct {
	Path     string   `yaml:"-" json:"-"`
	Requires string   `yaml:"requires,omitempty" json:"requires,omitempty"`
	Targets  []Target `yaml:"targets" json:"targets"`
}

// Target is one declared target: its kind and its options in declaration
// order.
type Target struct {
	Kind   component.Kind
	Params *params.Params
}

// Name returns the declared target name.
func (t Target) Name() string {
	v, _ := t.Params.Get(params.Name)
	return v.First()
}

// UnmarshalYAML splits the kind field off the option mapping.
func (t *Target) UnmarshalYAML(node *yaml.Node) error {
	p := params.New()
	if err := node.Decode(p); err != nil {
		return err
	}
	kind, ok := p.Take("kind")
	if !ok || kind.First() == "" {
		return fmt.Errorf("line %d: target missing required 'kind' field", node.Line)
	}
	t.Kind = component.Kind(kind.First())
	t.Params = p
	return nil
}

// Find returns the target declared under name.
func (f *File) Find(name string) (Target, bool) {
	for _, t := range f.Targets {
		if t.Name() == name {
			return t, true
		}
	}
	return Target{}, false
}
