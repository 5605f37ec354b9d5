// Package renderer turns a structural model into CSLA-style C# source text.
//
// The four output flavors are described by a closed table of variant
// descriptors consumed by two templates (object and list), so the
// suffix/pairing relations hold by construction.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/bogentools/bogen/internal/codegen/meta"
)

// Variant describes one generated output flavor.
type Variant struct {
	Suffix   string // appended to the source class name
	BaseType string // framework base class
	Accessor string // write accessor, object variants only
	Paired   string // suffix of the paired object variant, list variants only
	List     bool
	ReadOnly bool
}

var variants = map[string]Variant{
	"BO":   {Suffix: "BO", BaseType: "BusinessBase", Accessor: "SetProperty"},
	"Info": {Suffix: "Info", BaseType: "ReadOnlyBase", Accessor: "LoadProperty", ReadOnly: true},
	"EL":   {Suffix: "EL", BaseType: "BusinessListBase", Paired: "BO", List: true},
	"RL":   {Suffix: "RL", BaseType: "ReadOnlyListBase", Paired: "Info", List: true, ReadOnly: true},
}

// Order is the fixed generation order, independent of how variants were
// requested on the command line.
var Order = []string{"BO", "Info", "EL", "RL"}

// Lookup returns the descriptor for a variant tag.
func Lookup(tag string) (Variant, bool) {
	v, ok := variants[tag]
	return v, ok
}

// Expand resolves requested variant tags into descriptors in generation
// order. "All" stands for all four; duplicates collapse.
func Expand(requested []string) ([]Variant, error) {
	seen := map[string]bool{}
	for _, tag := range requested {
		if tag == "All" {
			for k := range variants {
				seen[k] = true
			}
			continue
		}
		if _, ok := variants[tag]; !ok {
			return nil, fmt.Errorf("unknown variant %q (supported: All, %s)", tag, strings.Join(Order, ", "))
		}
		seen[tag] = true
	}

	var out []Variant
	for _, tag := range Order {
		if seen[tag] {
			out = append(out, variants[tag])
		}
	}
	return out, nil
}

type templateData struct {
	Namespace   string
	Source      string
	ClassName   string
	BaseType    string
	Accessor    string
	ReadOnly    bool
	Paired      string
	SourceClass string
	Properties  []meta.Property
}

var (
	objectTmpl = template.Must(template.New("object").Parse(objectTemplate))
	listTmpl   = template.Must(template.New("list").Parse(listTemplate))
)

// Render produces the source text for one variant. The namespace override,
// when non-empty, replaces the model namespace as the declaring namespace;
// the originating namespace is always imported so the source class stays
// reachable. Rendering is deterministic and touches nothing outside its
// arguments.
func Render(model *meta.ClassModel, v Variant, namespaceOverride string) (string, error) {
	ns := model.Namespace
	if namespaceOverride != "" {
		ns = namespaceOverride
	}

	data := templateData{
		Namespace:   ns,
		Source:      model.Namespace,
		ClassName:   model.Name + v.Suffix,
		BaseType:    v.BaseType,
		Accessor:    v.Accessor,
		ReadOnly:    v.ReadOnly,
		Paired:      model.Name + v.Paired,
		SourceClass: model.Name,
		Properties:  model.Properties,
	}

	tmpl := objectTmpl
	if v.List {
		tmpl = listTmpl
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render %s variant: %w", v.Suffix, err)
	}
	return strings.Trim(out.String(), "\n"), nil
}

const objectTemplate = `using Csla;
using Csla.Core;
using {{.Source}};

namespace {{.Namespace}}
{
    [Serializable]
    public class {{.ClassName}} : {{.BaseType}}<{{.ClassName}}>
    {
{{range .Properties}}        public static readonly PropertyInfo<{{.Type}}> {{.Name}}Property = RegisterProperty<{{.Type}}>(c => c.{{.Name}});
        public {{.Type}} {{.Name}}
        {
            get { return GetProperty({{.Name}}Property); }
            {{if $.ReadOnly}}private {{end}}set { {{$.Accessor}}({{.Name}}Property, value); }
        }

{{end}}    }
}
`

const listTemplate = `using Csla;
using {{.Source}};

namespace {{.Namespace}}
{
    [Serializable]
    public class {{.ClassName}} : {{.BaseType}}<{{.ClassName}}, {{.Paired}}, {{.SourceClass}}>
    {
        public {{.ClassName}}()
        {
        }
    }
}
`
