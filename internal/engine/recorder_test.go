package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkbuild/talkbuild/internal/params"
)

func names(p *Plan) []string {
	var out []string
	for _, s := range p.Steps {
		out = append(out, s.Node.Name)
	}
	return out
}

func TestRecorder_RecordsNodes(t *testing.T) {
	r := NewRecorder()
	p := params.New().With(params.NativeLibs, params.List("z"))

	n, err := r.Library("base", []string{"a.cc"}, p)
	require.NoError(t, err)

	assert.Equal(t, KindLibrary, n.Kind)
	assert.Equal(t, "base", n.Name)
	assert.Equal(t, []string{"a.cc"}, n.Srcs)
	assert.NotEqual(t, uuid.Nil, n.ID)

	got, ok := r.Node("base")
	require.True(t, ok)
	assert.Same(t, n, got)

	p.Set(params.NativeLibs, params.List("changed"))
	v, _ := n.Params.Get(params.NativeLibs)
	assert.Equal(t, []string{"z"}, v.Strings(), "node params must not alias the caller's set")
}

func TestRecorder_KindsPerConstructor(t *testing.T) {
	r := NewRecorder()
	_, err := r.Object("o", []string{"o.cc"}, nil)
	require.NoError(t, err)
	_, err = r.TestProgram("t_unittest", []string{"t.cc"}, nil)
	require.NoError(t, err)
	_, err = r.Program("app", []string{"main.cc"}, nil)
	require.NoError(t, err)

	var kinds []Kind
	for _, n := range r.Nodes() {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []Kind{KindObject, KindTestProgram, KindProgram}, kinds)
}

func TestRecorder_DuplicateTarget(t *testing.T) {
	r := NewRecorder()
	_, err := r.Library("base", []string{"a.cc"}, nil)
	require.NoError(t, err)

	_, err = r.Program("base", []string{"main.cc"}, nil)
	assert.ErrorIs(t, err, ErrDuplicateTarget)
}

func TestRecorder_Depends(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Depends("app", []string{"base", "gen"}))
	require.NoError(t, r.Depends("app", []string{"gen", "extra"}))

	assert.Equal(t, []string{"base", "gen", "extra"}, r.Dependencies("app"))
	assert.Error(t, r.Depends("", []string{"x"}))
}

func TestRecorder_AddRepository(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.AddRepository("third_party/expat", "/src/expat"))
	assert.Error(t, r.AddRepository("", "/src"))

	assert.Equal(t, []Repository{{At: "third_party/expat", Path: "/src/expat"}}, r.Repositories())
}

func TestPlan_DependenciesFirst(t *testing.T) {
	r := NewRecorder()
	_, err := r.Program("app", []string{"main.cc"}, nil)
	require.NoError(t, err)
	_, err = r.Library("net", []string{"net.cc"}, nil)
	require.NoError(t, err)
	_, err = r.Library("base", []string{"base.cc"}, nil)
	require.NoError(t, err)

	require.NoError(t, r.Depends("app", []string{"net", "/usr/include/foo.h"}))
	require.NoError(t, r.Depends("net", []string{"base"}))

	plan, err := r.Plan()
	require.NoError(t, err)

	assert.Equal(t, []string{"base", "net", "app"}, names(plan))
	assert.Equal(t, []string{"net", "/usr/include/foo.h"}, plan.Steps[2].Depends)
}

func TestPlan_KeepsConstructionOrderWithoutEdges(t *testing.T) {
	r := NewRecorder()
	for _, n := range []string{"c", "a", "b"} {
		_, err := r.Library(n, []string{n + ".cc"}, nil)
		require.NoError(t, err)
	}

	plan, err := r.Plan()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, names(plan))
}

func TestPlan_Cycle(t *testing.T) {
	r := NewRecorder()
	_, err := r.Library("a", []string{"a.cc"}, nil)
	require.NoError(t, err)
	_, err = r.Library("b", []string{"b.cc"}, nil)
	require.NoError(t, err)
	require.NoError(t, r.Depends("a", []string{"b"}))
	require.NoError(t, r.Depends("b", []string{"a"}))

	_, err = r.Plan()
	require.ErrorIs(t, err, ErrDependencyCycle)
	assert.Contains(t, err.Error(), "a -> b -> a")
}

func TestRender_Text(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.AddRepository("expat", "$GOOGLE3/third_party/expat"))
	p := params.New().
		With(params.NativeLibPath, params.List("$MAIN_DIR/lib")).
		With(params.ComponentStatic, params.Flag(true))
	_, err := r.Library("base", []string{"a.cc", "b.cc"}, p)
	require.NoError(t, err)

	plan, err := r.Plan()
	require.NoError(t, err)

	expand := func(s string) string {
		return map[string]string{
			"$MAIN_DIR/lib":              "/m/lib",
			"$GOOGLE3/third_party/expat": "/g/third_party/expat",
		}[s]
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, plan, FormatText, expand))

	out := buf.String()
	assert.Contains(t, out, `library "base"`)
	assert.Contains(t, out, "srcs: a.cc b.cc")
	assert.Contains(t, out, "LIBPATH: /m/lib")
	assert.Contains(t, out, "COMPONENT_STATIC: true")
	assert.Contains(t, out, "repository expat <- /g/third_party/expat")
}

func TestRender_JSON(t *testing.T) {
	r := NewRecorder()
	_, err := r.Object("o", []string{"o.cc"}, params.New().With(params.NativeCCFlags, params.List("-O2")))
	require.NoError(t, err)
	plan, err := r.Plan()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, plan, FormatJSON, nil))

	var decoded struct {
		Steps []struct {
			Node struct {
				Name   string              `json:"name"`
				Kind   string              `json:"kind"`
				Params map[string][]string `json:"params"`
			} `json:"node"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Steps, 1)
	assert.Equal(t, "object", decoded.Steps[0].Node.Kind)
	assert.Equal(t, []string{"-O2"}, decoded.Steps[0].Node.Params["CCFLAGS"])
}

func TestRender_YAML(t *testing.T) {
	r := NewRecorder()
	_, err := r.Library("base", []string{"a.cc"}, nil)
	require.NoError(t, err)
	plan, err := r.Plan()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, plan, FormatYAML, nil))
	assert.Contains(t, buf.String(), "name: base")
	assert.Contains(t, buf.String(), "kind: library")
}

func TestRender_UnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, &Plan{}, "xml", nil))
}
