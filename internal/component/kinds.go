package component

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/talkbuild/talkbuild/internal/params"
)

// Kind is a declarable target kind.
type Kind string

const (
	KindLibrary        Kind = "library"
	KindDynamicLibrary Kind = "dynamic_library"
	KindObject         Kind = "object"
	KindUnittest       Kind = "unittest"
	KindApp            Kind = "app"
)

// Kinds lists every declarable kind.
var Kinds = []Kind{KindLibrary, KindDynamicLibrary, KindObject, KindUnittest, KindApp}

// BuildFileSuffix is appended to a directory's base name to find the
// declaration file describing it.
const BuildFileSuffix = ".talk.yaml"

// windowsSystemLibs are linked into every windows program unless the
// declaration sets explicit_libs.
var windowsSystemLibs = []string{
	"advapi32",
	"crypt32",
	"iphlpapi",
	"secur32",
	"shell32",
	"shlwapi",
	"user32",
	"wininet",
	"ws2_32",
}

var linuxTestLibs = []string{
	"pthread",
	":libssl.so.0.9.8",
	":libcrypto.so.0.9.8",
}

// Build dispatches decl to the constructor for kind.
func (b *Builder) Build(kind Kind, decl *params.Params) (Result, error) {
	switch kind {
	case KindLibrary:
		return b.Library(decl)
	case KindDynamicLibrary:
		return b.DynamicLibrary(decl)
	case KindObject:
		return b.Object(decl)
	case KindUnittest:
		return b.Unittest(decl)
	case KindApp:
		return b.App(decl)
	}
	return Result{}, fmt.Errorf("unknown target kind %q", kind)
}

// Library builds a static library.
func (b *Builder) Library(decl *params.Params) (Result, error) {
	p := params.Combine(decl, params.New().With(params.ComponentStatic, params.Flag(true)))
	return b.Extend(p, b.eng.Library)
}

// DynamicLibrary builds a shared library.
func (b *Builder) DynamicLibrary(decl *params.Params) (Result, error) {
	p := params.Combine(decl, params.New().With(params.ComponentStatic, params.Flag(false)))
	return b.Extend(p, b.eng.Library)
}

// Object builds a single object node.
func (b *Builder) Object(decl *params.Params) (Result, error) {
	return b.Extend(decl, b.eng.Object)
}

// Unittest builds a test program named <name>_unittest linked against the
// unit test framework.
func (b *Builder) Unittest(decl *params.Params) (Result, error) {
	name, ok := decl.Get(params.Name)
	if !ok || name.First() == "" {
		return Result{}, fmt.Errorf("declaring unittest: %w", ErrMissingName)
	}

	kwargs := decl.Clone()
	kwargs.Set(params.Name, params.List(name.First()+"_unittest"))

	defaults := params.New().
		With("posix_"+params.CPPDefines, params.List("GUNIT_NO_GOOGLE3", "GTEST_HAS_RTTI=0")).
		With(params.Libs, params.List("unittest_main", "gunit"))
	if !decl.Has(params.ExplicitLibs) {
		defaults.Set("win_"+params.Libs, params.List(windowsSystemLibs...))
		defaults.Set("lin_"+params.Libs, params.List(linuxTestLibs...))
	}

	return b.Extend(params.Combine(kwargs, defaults), b.eng.TestProgram)
}

// App builds an executable.
func (b *Builder) App(decl *params.Params) (Result, error) {
	p := decl
	if !decl.Has(params.ExplicitLibs) {
		p = params.Combine(decl, params.New().With("win_"+params.Libs, params.List(windowsSystemLibs...)))
	}
	return b.Extend(p, b.eng.Program)
}

// Repository maps the directory path, outside the main tree, onto the mount
// point at so sources compiled from it land under the object directory.
func (b *Builder) Repository(at, path string) error {
	if err := b.eng.AddRepository(at, path); err != nil {
		return fmt.Errorf("mounting %s at %s: %w", path, at, err)
	}
	return nil
}

// Components resolves declaration file paths. A path naming an existing file
// is kept; any other path is treated as a directory and expanded with
// ExpandBuildPath.
func Components(paths ...string) []string {
	files := make([]string, 0, len(paths))
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			files = append(files, path)
			continue
		}
		files = append(files, ExpandBuildPath(path))
	}
	return files
}

// ExpandBuildPath returns the declaration file for a directory, following the
// dir/<base>.talk.yaml convention: a/b/c becomes a/b/c/c.talk.yaml.
func ExpandBuildPath(path string) string {
	clean := filepath.Clean(path)
	return filepath.Join(clean, filepath.Base(clean)+BuildFileSuffix)
}
