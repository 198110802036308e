package engine

import (
	"github.com/google/uuid"

	"github.com/talkbuild/talkbuild/internal/params"
)

// Kind identifies the node constructor that produced a node.
type Kind string

const (
	KindLibrary     Kind = "library"
	KindObject      Kind = "object"
	KindTestProgram Kind = "test_program"
	KindProgram     Kind = "program"
)

// Node is the handle of a constructed build node.
type Node struct {
	ID     uuid.UUID      `json:"id" yaml:"id"`
	Name   string         `json:"name" yaml:"name"`
	Kind   Kind           `json:"kind" yaml:"kind"`
	Srcs   []string       `json:"srcs" yaml:"srcs"`
	Params *params.Params `json:"params" yaml:"params"`
}

// Constructor creates a build node from a target name, its sources and the
// remaining engine-native parameters.
type Constructor func(name string, srcs []string, p *params.Params) (*Node, error)

// Engine is the build engine a declaration is translated onto.
type Engine interface {
	Library(name string, srcs []string, p *params.Params) (*Node, error)
	Object(name string, srcs []string, p *params.Params) (*Node, error)
	TestProgram(name string, srcs []string, p *params.Params) (*Node, error)
	Program(name string, srcs []string, p *params.Params) (*Node, error)

	// Depends registers explicit dependency edges from target name.
	Depends(name string, deps []string) error

	// AddRepository maps the out-of-tree directory path onto at.
	AddRepository(at, path string) error
}

// Repository is a mounted out-of-tree source root.
type Repository struct {
	At   string `json:"at" yaml:"at"`
	Path string `json:"path" yaml:"path"`
}
