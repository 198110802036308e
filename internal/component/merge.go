package component

import (
	"github.com/talkbuild/talkbuild/internal/params"
	"github.com/talkbuild/talkbuild/internal/platform"
)

// MergeByPlatform filters decl for the active platforms in bits.
//
// Keys carrying an active platform prefix lose the prefix, keys carrying an
// inactive one are dropped, and all other keys are kept. Keys that reduce to
// the same name have their values concatenated in declaration order, so on
// windows {win_foo: [a,b], lin_foo: [c], foo: [e]} becomes {foo: [a,b,e]}.
// Stacked prefixes (posix_lin_foo) are peeled one at a time and the key is
// dropped as soon as one of them is inactive, so the result never holds a
// platform-prefixed key.
func MergeByPlatform(bits platform.Bits, decl *params.Params) *params.Params {
	merged := params.New()
	for arg, v := range decl.All() {
		key, ok := stripActive(bits, arg)
		if !ok {
			continue
		}
		merged.MergeInto(key, v, true)
	}
	return merged
}

// stripActive removes the active platform prefixes from key. ok is false when
// key is conditioned on an inactive platform.
func stripActive(bits platform.Bits, key string) (string, bool) {
	for {
		p, rest, found := platform.SplitPrefix(key)
		if !found {
			return key, true
		}
		if !bits.Has(p) {
			return "", false
		}
		key = rest
	}
}
