// Package component translates target declarations into engine node
// constructions. Each target kind (library, dynamic library, object,
// unittest, app) adds its defaults to the declaration and hands it to
// Builder.Extend, which filters platform-prefixed options, merges in the
// ambient environment, renames logical option names to the engine's
// construction variables and calls the node constructor.
//
// A target without sources is not an error: Extend returns a Skipped result
// and constructs nothing.
package component
