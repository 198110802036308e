package component

import (
	"errors"
	"fmt"

	"github.com/talkbuild/talkbuild/internal/engine"
	"github.com/talkbuild/talkbuild/internal/environment"
	"github.com/talkbuild/talkbuild/internal/logger"
	"github.com/talkbuild/talkbuild/internal/params"
)

// ErrMissingName is returned when a declaration that needs a target name
// (dependency edges, unittest naming) has none.
var ErrMissingName = errors.New("target has no name")

// Builder builds targets against one environment and engine.
type Builder struct {
	env *environment.Environment
	eng engine.Engine
	log *logger.Logger
}

// NewBuilder returns a Builder. A nil log discards output.
func NewBuilder(env *environment.Environment, eng engine.Engine, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{env: env, eng: eng, log: log}
}

// Target is a declaration after platform filtering and environment merging,
// ready for a node constructor.
type Target struct {
	Name    string
	Srcs    []string
	Depends []string
	Params  *params.Params
	Dump    bool
}

// control switches are consumed by Resolve and never reach the engine.
var controlSwitches = []string{
	params.PrependIncludeDirs,
	params.IncludeTalkMediaLibs,
	params.ExplicitLibs,
}

// ambient lists the environment dictionaries merged into every target.
var ambient = []string{
	params.NativeCPPDefines,
	params.NativeCPPPath,
	params.NativeCCFlags,
	params.NativeLibPath,
	params.NativeLinkFlags,
}

// Resolve turns decl into a Target without touching the engine. decl is not
// modified.
func (b *Builder) Resolve(decl *params.Params) (*Target, error) {
	kwargs := decl.Clone()

	nameVal, _ := kwargs.Take(params.Name)
	dumpVal, _ := kwargs.Take(params.Dump)
	t := &Target{Name: nameVal.First(), Dump: dumpVal.Bool()}

	if v, ok := kwargs.Get(params.IncludeTalkMediaLibs); ok && v.Bool() {
		kwargs = AddMediaLibs(b.env, kwargs)
	}

	p := MergeByPlatform(b.env.Bits(), kwargs)

	if deps, ok := p.Take(params.Depends); ok && !deps.Empty() {
		if t.Name == "" {
			return nil, fmt.Errorf("declaring dependencies %v: %w", deps.Strings(), ErrMissingName)
		}
		t.Depends = deps.Strings()
	}

	// Environment values go first; declared values follow them.
	for _, dict := range ambient {
		p.MergeInto(dict, params.List(b.env.Dictionary(dict)...), false)
	}
	if b.env.Bits().Mac {
		p.MergeInto(params.NativeFrameworks, params.List(b.env.Dictionary(params.NativeFrameworks)...), false)
	}

	p.RenameKey(params.CPPDefines, params.NativeCPPDefines, true)
	if p.Has(params.PrependIncludeDirs) {
		p.RenameKey(params.IncludeDirs, params.NativeCPPPath, false)
	} else {
		p.RenameKey(params.IncludeDirs, params.NativeCPPPath, true)
	}
	p.RenameKey(params.CCFlags, params.NativeCCFlags, false)
	p.RenameKey(params.LibDirs, params.NativeLibPath, true)
	p.RenameKey(params.LinkFlags, params.NativeLinkFlags, true)
	p.RenameKey(params.Libs, params.NativeLibs, true)

	for _, sw := range controlSwitches {
		p.Delete(sw)
	}

	srcs, _ := p.Take(params.Srcs)
	t.Srcs = srcs.Strings()
	t.Params = p
	return t, nil
}

// Extend resolves decl, registers its dependency edges and hands it to
// construct. A target without sources is skipped.
func (b *Builder) Extend(decl *params.Params, construct engine.Constructor) (Result, error) {
	t, err := b.Resolve(decl)
	if err != nil {
		return Result{}, err
	}

	log := b.log.Target(t.Name)
	if t.Dump {
		log.Info().Strs("srcs", t.Srcs).Strs("depends", t.Depends).
			Interface("params", t.Params.ToMap()).Msg("merged parameters")
	}

	if len(t.Depends) > 0 {
		if err := b.eng.Depends(t.Name, t.Depends); err != nil {
			return Result{}, fmt.Errorf("registering dependencies of %s: %w", t.Name, err)
		}
	}

	if len(t.Srcs) == 0 {
		log.Debug().Msg("no sources, skipping")
		return Skipped("no sources"), nil
	}

	n, err := construct(t.Name, t.Srcs, t.Params)
	if err != nil {
		return Result{}, fmt.Errorf("constructing %s: %w", t.Name, err)
	}
	log.Debug().Str("node", n.ID.String()).Msg("constructed")
	return Built(n), nil
}
