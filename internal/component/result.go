package component

import "github.com/talkbuild/talkbuild/internal/engine"

// Result is the outcome of building one target: either a constructed node
// or a skip with its reason.
type Result struct {
	node   *engine.Node
	reason string
}

// Built wraps a constructed node.
func Built(n *engine.Node) Result { return Result{node: n} }

// Skipped records that no node was constructed.
func Skipped(reason string) Result { return Result{reason: reason} }

// Node returns the constructed node. ok is false for a skipped target.
func (r Result) Node() (n *engine.Node, ok bool) { return r.node, r.node != nil }

// IsSkipped reports whether no node was constructed.
func (r Result) IsSkipped() bool { return r.node == nil }

// Reason explains a skip.
func (r Result) Reason() string { return r.reason }
