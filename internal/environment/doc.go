// Package environment provides the read-only ambient build environment that
// every target merge consults: the active platform bits, the construction
// variable dictionaries (defines, include paths, compile flags, library
// paths, link flags, frameworks) and the path variables that declarations
// reference as $MAIN_DIR and $GOOGLE3.
//
// An Environment is assembled once from built-in defaults, optional profile
// overlays and the process environment, then passed explicitly to the merge
// functions. Nothing in this package mutates an Environment after Load.
package environment
