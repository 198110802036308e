package manifest

import (
	"fmt"
	"os"
	"slices"

	"go.yaml.in/yaml/v3"

	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/params"
)

// Parse reads and decodes the declaration file at path.
func Parse(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes declaration file contents and rejects unknown option
// names. path is only used in errors.
func ParseBytes(data []byte, path string) (*File, error) {
	f, err := decode(data, path)
	if err != nil {
		return nil, err
	}
	for _, t := range f.Targets {
		if err := params.Validate(t.Params); err != nil {
			return nil, fmt.Errorf("parsing declaration file %s: target %q: %w", path, t.Name(), err)
		}
	}
	return f, nil
}

// decode unmarshals a declaration file and checks target kinds only.
func decode(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing declaration file %s: %w", path, err)
	}
	for i, t := range f.Targets {
		if !slices.Contains(component.Kinds, t.Kind) {
			return nil, fmt.Errorf("parsing declaration file %s: target %d: unknown kind %q", path, i, t.Kind)
		}
	}
	f.Path = path
	return &f, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
