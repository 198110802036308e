package params

import (
	"errors"
	"fmt"

	"github.com/talkbuild/talkbuild/internal/platform"
)

// Logical option names accepted in declarations.
const (
	Name                 = "name"
	Srcs                 = "srcs"
	Depends              = "depends"
	Libs                 = "libs"
	LibDirs              = "libdirs"
	IncludeDirs          = "includedirs"
	CPPDefines           = "cppdefines"
	CCFlags              = "ccflags"
	LinkFlags            = "link_flags"
	Dump                 = "dump"
	PrependIncludeDirs   = "prepend_includedirs"
	IncludeTalkMediaLibs = "include_talk_media_libs"
	ExplicitLibs         = "explicit_libs"
)

// Engine-native construction variable names.
const (
	NativeCPPDefines = "CPPDEFINES"
	NativeCPPPath    = "CPPPATH"
	NativeCCFlags    = "CCFLAGS"
	NativeLibPath    = "LIBPATH"
	NativeLinkFlags  = "LINKFLAGS"
	NativeLibs       = "LIBS"
	NativeFrameworks = "FRAMEWORKS"
	ComponentStatic  = "COMPONENT_STATIC"
)

// ErrUnknownOption is returned by Validate for keys that are neither logical
// nor engine-native option names.
var ErrUnknownOption = errors.New("unknown option")

var recognized = map[string]bool{
	Name: true, Srcs: true, Depends: true, Libs: true, LibDirs: true,
	IncludeDirs: true, CPPDefines: true, CCFlags: true, LinkFlags: true,
	Dump: true, PrependIncludeDirs: true, IncludeTalkMediaLibs: true,
	ExplicitLibs: true,

	NativeCPPDefines: true, NativeCPPPath: true, NativeCCFlags: true,
	NativeLibPath: true, NativeLinkFlags: true, NativeLibs: true,
	NativeFrameworks: true, ComponentStatic: true,
}

// IsRecognized reports whether key, after removing its platform prefixes,
// names a known option. Stacked prefixes such as posix_lin_ are peeled one at
// a time.
func IsRecognized(key string) bool {
	for {
		_, rest, found := platform.SplitPrefix(key)
		if !found {
			return recognized[key]
		}
		key = rest
	}
}

// Validate checks every key of p against the recognized option names. The
// returned error joins one ErrUnknownOption per offending key.
func Validate(p *Params) error {
	var errs []error
	for k := range p.All() {
		if !IsRecognized(k) {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownOption, k))
		}
	}
	return errors.Join(errs...)
}
