package engine

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"go.yaml.in/yaml/v3"
)

// Output formats understood by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

//go:embed templates/plan.tmpl
var templateFS embed.FS

type textParam struct {
	Key   string
	Value string
}

type textStep struct {
	ID      string
	Name    string
	Kind    Kind
	Srcs    []string
	Depends []string
	Params  []textParam
}

type textPlan struct {
	Repositories []Repository
	Steps        []textStep
}

// Expander rewrites path strings before rendering. A nil Expander leaves
// values as recorded.
type Expander func(string) string

// Render writes plan to w in the given format.
func Render(w io.Writer, plan *Plan, format string, expand Expander) error {
	switch format {
	case FormatText, "":
		return renderText(w, plan, expand)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("encoding plan as JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("encoding plan as YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown plan format %q (want text, json or yaml)", format)
}

func renderText(w io.Writer, plan *Plan, expand Expander) error {
	if expand == nil {
		expand = func(s string) string { return s }
	}

	data := textPlan{}
	for _, r := range plan.Repositories {
		data.Repositories = append(data.Repositories, Repository{At: r.At, Path: expand(r.Path)})
	}
	for _, s := range plan.Steps {
		ts := textStep{
			ID:      s.Node.ID.String(),
			Name:    s.Node.Name,
			Kind:    s.Node.Kind,
			Srcs:    s.Node.Srcs,
			Depends: s.Depends,
		}
		for k, v := range s.Node.Params.All() {
			val := v.String()
			if !v.IsFlag() {
				items := v.Strings()
				for i := range items {
					items[i] = expand(items[i])
				}
				val = strings.Join(items, " ")
			}
			ts.Params = append(ts.Params, textParam{Key: k, Value: val})
		}
		data.Steps = append(data.Steps, ts)
	}

	tmpl, err := template.New("plan.tmpl").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/plan.tmpl")
	if err != nil {
		return fmt.Errorf("parsing plan template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering plan: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}
