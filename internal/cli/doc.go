// Package cli defines the Cobra command tree for the talkbuild CLI. Each file
// in this package registers one top-level command (plan, merge, validate,
// etc.) with the root command. Command implementations delegate to internal
// packages for the merging logic and only handle flag parsing and output
// formatting.
package cli
