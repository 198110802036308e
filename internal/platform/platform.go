package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is a target platform family.
type Platform int

const (
	Linux Platform = iota
	Mac
	Posix
	Windows
)

// All lists every platform in prefix-table order.
var All = []Platform{Linux, Mac, Posix, Windows}

// String returns the platform's bit name (e.g., "linux").
func (p Platform) String() string {
	switch p {
	case Linux:
		return "linux"
	case Mac:
		return "mac"
	case Posix:
		return "posix"
	case Windows:
		return "windows"
	}
	return fmt.Sprintf("platform(%d)", int(p))
}

// Prefix returns the option-name prefix selecting this platform.
func (p Platform) Prefix() string {
	switch p {
	case Linux:
		return "lin_"
	case Mac:
		return "mac_"
	case Posix:
		return "posix_"
	case Windows:
		return "win_"
	}
	panic(fmt.Sprintf("platform: no prefix for %s", p))
}

// Parse returns the platform for a bit name.
func Parse(name string) (Platform, error) {
	for _, p := range All {
		if p.String() == strings.ToLower(strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", name)
}

// SplitPrefix reports which platform prefix key carries, if any, and returns
// the key without it.
func SplitPrefix(key string) (Platform, string, bool) {
	for _, p := range All {
		if rest, ok := strings.CutPrefix(key, p.Prefix()); ok {
			return p, rest, true
		}
	}
	return 0, key, false
}

// Bits is the active platform set plus the build-mode switches.
type Bits struct {
	Linux   bool
	Mac     bool
	Posix   bool
	Windows bool

	Debug    bool
	Coverage bool
}

// Has reports whether p is active.
func (b Bits) Has(p Platform) bool {
	switch p {
	case Linux:
		return b.Linux
	case Mac:
		return b.Mac
	case Posix:
		return b.Posix
	case Windows:
		return b.Windows
	}
	return false
}

// Active returns the active platforms in prefix-table order.
func (b Bits) Active() []Platform {
	var out []Platform
	for _, p := range All {
		if b.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// String renders the set as a comma-separated list, e.g. "linux,posix,debug".
func (b Bits) String() string {
	var names []string
	for _, p := range b.Active() {
		names = append(names, p.String())
	}
	if b.Debug {
		names = append(names, "debug")
	}
	if b.Coverage {
		names = append(names, "coverage")
	}
	return strings.Join(names, ",")
}

// For returns the bits of a build targeting the given platform name. Linux and
// mac builds are also posix builds.
func For(name string) (Bits, error) {
	p, err := Parse(name)
	if err != nil {
		return Bits{}, err
	}
	switch p {
	case Linux:
		return Bits{Linux: true, Posix: true}, nil
	case Mac:
		return Bits{Mac: true, Posix: true}, nil
	case Windows:
		return Bits{Windows: true}, nil
	default:
		return Bits{Posix: true}, nil
	}
}

// ForGOOS maps a Go GOOS value to platform bits. Unknown systems are treated
// as generic posix.
func ForGOOS(goos string) Bits {
	switch goos {
	case "linux", "android":
		return Bits{Linux: true, Posix: true}
	case "darwin", "ios":
		return Bits{Mac: true, Posix: true}
	case "windows":
		return Bits{Windows: true}
	default:
		return Bits{Posix: true}
	}
}

// Host returns the bits for the platform this binary runs on.
func Host() Bits {
	return ForGOOS(runtime.GOOS)
}
