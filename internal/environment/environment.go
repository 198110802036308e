package environment

import (
	"fmt"
	"os"
	"slices"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/talkbuild/talkbuild/internal/params"
	"github.com/talkbuild/talkbuild/internal/platform"
)

// Settings are the construction-variable defaults merged into every target.
type Settings struct {
	CPPDefines []string `mapstructure:"cppdefines" yaml:"cppdefines,omitempty"`
	CPPPath    []string `mapstructure:"cpppath" yaml:"cpppath,omitempty"`
	CCFlags    []string `mapstructure:"ccflags" yaml:"ccflags,omitempty"`
	LibPath    []string `mapstructure:"libpath" yaml:"libpath,omitempty"`
	LinkFlags  []string `mapstructure:"linkflags" yaml:"linkflags,omitempty"`
	Frameworks []string `mapstructure:"frameworks" yaml:"frameworks,omitempty"`
}

// Paths holds the source roots declarations refer to by variable.
type Paths struct {
	MainDir string `env:"MAIN_DIR" envDefault:"."`
	Google3 string `env:"GOOGLE3" envDefault:"$MAIN_DIR/.."`
}

// Environment is the immutable ambient environment of one build.
type Environment struct {
	bits  platform.Bits
	dicts map[string][]string
	vars  map[string]string
}

// New builds an Environment from explicit values.
func New(bits platform.Bits, s Settings, paths Paths) *Environment {
	e := &Environment{
		bits: bits,
		dicts: map[string][]string{
			params.NativeCPPDefines: slices.Clone(s.CPPDefines),
			params.NativeCPPPath:    slices.Clone(s.CPPPath),
			params.NativeCCFlags:    slices.Clone(s.CCFlags),
			params.NativeLibPath:    slices.Clone(s.LibPath),
			params.NativeLinkFlags:  slices.Clone(s.LinkFlags),
			params.NativeFrameworks: slices.Clone(s.Frameworks),
		},
		vars: map[string]string{
			"MAIN_DIR": paths.MainDir,
			"GOOGLE3":  paths.Google3,
		},
	}
	return e
}

// Load layers the overlays onto the built-in defaults for bits, appending
// their lists in order, and reads the path variables from the process
// environment.
func Load(bits platform.Bits, overlays ...Settings) (*Environment, error) {
	s := Defaults(bits)
	for i, o := range overlays {
		if err := mergo.Merge(&s, o, mergo.WithAppendSlice); err != nil {
			return nil, fmt.Errorf("merging environment overlay %d: %w", i, err)
		}
	}

	paths, err := env.ParseAs[Paths]()
	if err != nil {
		return nil, fmt.Errorf("reading path variables: %w", err)
	}

	return New(bits, s, paths), nil
}

// Bits returns the active platform set.
func (e *Environment) Bits() platform.Bits { return e.bits }

// Dictionary returns a copy of the named construction variable, or nil.
func (e *Environment) Dictionary(name string) []string {
	return slices.Clone(e.dicts[name])
}

// Var returns a path variable, or "" if it is not defined.
func (e *Environment) Var(name string) string { return e.vars[name] }

// Expand substitutes $VAR and ${VAR} references to path variables. Unknown
// variables are left in place for the engine to resolve.
func (e *Environment) Expand(s string) string {
	for range 4 {
		next := os.Expand(s, func(name string) string {
			if v, ok := e.vars[name]; ok {
				return v
			}
			return "${" + name + "}"
		})
		if next == s {
			break
		}
		s = next
	}
	return s
}
