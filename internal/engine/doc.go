// Package engine defines the boundary to the build engine: the node
// constructors a target declaration is finally handed to, dependency edge
// registration and repository mounting. Recorder is an in-memory engine that
// keeps every constructed node so a build plan can be ordered and rendered
// without running a compiler.
package engine
