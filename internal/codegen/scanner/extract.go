package scanner

import (
	"fmt"
	"strings"

	"github.com/bogentools/bogen/internal/codegen/meta"
)

// StructuralError reports an input file whose shape the generator cannot
// work with: anything other than exactly one namespace containing exactly
// one class. It is fatal for the whole invocation.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Reason
}

// Extract parses source text and reduces it to the structural model the
// renderers consume. Virtual properties are dropped; everything else is
// recorded in declaration order with its type text verbatim.
func Extract(src string) (*meta.ClassModel, error) {
	file, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	var namespaces []*NamespaceDecl
	for _, d := range file.Decls {
		if d.Namespace != nil {
			namespaces = append(namespaces, d.Namespace)
		}
	}
	switch {
	case len(namespaces) == 0:
		return nil, &StructuralError{Reason: "no namespace"}
	case len(namespaces) > 1:
		return nil, &StructuralError{Reason: "ambiguous namespace"}
	}
	ns := namespaces[0]

	switch {
	case len(ns.Classes) == 0:
		return nil, &StructuralError{Reason: "no class"}
	case len(ns.Classes) > 1:
		return nil, &StructuralError{Reason: "ambiguous class"}
	}
	class := ns.Classes[0]

	model := &meta.ClassModel{
		Namespace: strings.Join(ns.Name, "."),
		Name:      class.Name,
	}
	for _, m := range class.Members {
		if m.Property == nil {
			continue
		}
		if m.hasModifier("virtual") {
			continue
		}
		model.Properties = append(model.Properties, meta.Property{
			Name: m.Name,
			Type: m.Type.String(),
		})
	}
	return model, nil
}
