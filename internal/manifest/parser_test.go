package manifest

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/talkbuild/talkbuild/internal/component"
	"github.com/talkbuild/talkbuild/internal/params"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse_Targets(t *testing.T) {
	f, err := Parse(testPath("base.talk.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if f.Requires != ">= 0.1.0" {
		t.Errorf("Requires = %q, want %q", f.Requires, ">= 0.1.0")
	}
	if f.Path != testPath("base.talk.yaml") {
		t.Errorf("Path = %q", f.Path)
	}
	if len(f.Targets) != 3 {
		t.Fatalf("Targets len = %d, want 3", len(f.Targets))
	}

	tests := []struct {
		kind component.Kind
		name string
	}{
		{component.KindLibrary, "base"},
		{component.KindUnittest, "base"},
		{component.KindApp, "call"},
	}
	for i, tt := range tests {
		if f.Targets[i].Kind != tt.kind {
			t.Errorf("Targets[%d].Kind = %q, want %q", i, f.Targets[i].Kind, tt.kind)
		}
		if f.Targets[i].Name() != tt.name {
			t.Errorf("Targets[%d].Name() = %q, want %q", i, f.Targets[i].Name(), tt.name)
		}
	}
}

func TestParse_KeepsOptionOrder(t *testing.T) {
	f, err := Parse(testPath("base.talk.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := []string{"name", "srcs", "win_srcs", "posix_srcs", "includedirs", "prepend_includedirs", "lin_libs"}
	if got := f.Targets[0].Params.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}

	v, _ := f.Targets[0].Params.Get("prepend_includedirs")
	if !v.IsFlag() || !v.Bool() {
		t.Errorf("prepend_includedirs = %v, want true switch", v)
	}
	if f.Targets[0].Params.Has("kind") {
		t.Error("kind should not remain among the options")
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := Parse(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse(testPath("invalid-kind.yaml"))
	if err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
}

func TestParse_MissingKind(t *testing.T) {
	_, err := Parse(testPath("missing-kind.yaml"))
	if err == nil {
		t.Fatal("expected error for missing kind, got nil")
	}
}

func TestParseBytes_StackedPrefixes(t *testing.T) {
	data := []byte("targets:\n  - kind: library\n    name: base\n    srcs: [a.cc]\n    posix_lin_libs: [rt]\n")
	f, err := ParseBytes(data, "inline")
	if err != nil {
		t.Fatalf("ParseBytes error: %v", err)
	}
	if !f.Targets[0].Params.Has("posix_lin_libs") {
		t.Error("posix_lin_libs should be kept for platform merging")
	}
}

func TestFind(t *testing.T) {
	f, err := Parse(testPath("base.talk.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	target, ok := f.Find("call")
	if !ok {
		t.Fatal("Find(call) not found")
	}
	if target.Kind != component.KindApp {
		t.Errorf("Kind = %q, want app", target.Kind)
	}

	if _, ok := f.Find("nope"); ok {
		t.Error("Find(nope) should fail")
	}
}

func TestParse_UnknownOption(t *testing.T) {
	_, err := Parse(testPath("unknown-option.yaml"))
	if !errors.Is(err, params.ErrUnknownOption) {
		t.Fatalf("error = %v, want ErrUnknownOption", err)
	}
}
