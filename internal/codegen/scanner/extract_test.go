package scanner

import (
	"errors"
	"testing"
)

const customerSource = `
using System;

namespace App.Models
{
    [Serializable]
    public class Customer
    {
        public virtual int Id { get; set; }
        public string Name { get; set; }
        public DateTime? LastSeen { get; set; }
        public Dictionary<string, int> Scores { get; set; }
        public decimal Balance { get; private set; }
        private int counter;
    }
}
`

func TestExtract(t *testing.T) {
	model, err := Extract(customerSource)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if model.Namespace != "App.Models" {
		t.Errorf("namespace: expected %q, got %q", "App.Models", model.Namespace)
	}
	if model.Name != "Customer" {
		t.Errorf("class name: expected %q, got %q", "Customer", model.Name)
	}

	// Id is virtual and excluded; counter is a field and excluded.
	want := []struct{ name, typ string }{
		{"Name", "string"},
		{"LastSeen", "DateTime?"},
		{"Scores", "Dictionary<string, int>"},
		{"Balance", "decimal"},
	}
	if len(model.Properties) != len(want) {
		t.Fatalf("expected %d properties, got %d: %+v", len(want), len(model.Properties), model.Properties)
	}
	for i, w := range want {
		if model.Properties[i].Name != w.name {
			t.Errorf("property %d: expected name %q, got %q", i, w.name, model.Properties[i].Name)
		}
		if model.Properties[i].Type != w.typ {
			t.Errorf("property %d: expected type %q, got %q", i, w.typ, model.Properties[i].Type)
		}
	}
}

func TestExtractFileScopedNamespace(t *testing.T) {
	src := `
namespace App.Models;

public class Order
{
    public int Quantity { get; set; }
    public string Sku { get; set; } = "none";
}
`
	model, err := Extract(src)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if model.Namespace != "App.Models" {
		t.Errorf("namespace: expected %q, got %q", "App.Models", model.Namespace)
	}
	if model.Name != "Order" {
		t.Errorf("class name: expected %q, got %q", "Order", model.Name)
	}
	if len(model.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(model.Properties))
	}
}

func TestExtractArrayAndQualifiedTypes(t *testing.T) {
	src := `
namespace App
{
    public class Blob
    {
        public byte[] Data { get; set; }
        public System.Guid Token { get; set; }
    }
}
`
	model, err := Extract(src)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if model.Properties[0].Type != "byte[]" {
		t.Errorf("expected type %q, got %q", "byte[]", model.Properties[0].Type)
	}
	if model.Properties[1].Type != "System.Guid" {
		t.Errorf("expected type %q, got %q", "System.Guid", model.Properties[1].Type)
	}
}

func TestExtractStructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		reason string
	}{
		{
			name:   "no namespace",
			src:    `public class Customer { public string Name { get; set; } }`,
			reason: "no namespace",
		},
		{
			name: "two namespaces",
			src: `
namespace A { public class X { } }
namespace B { public class Y { } }
`,
			reason: "ambiguous namespace",
		},
		{
			name:   "no class",
			src:    `namespace A { }`,
			reason: "no class",
		},
		{
			name: "two classes",
			src: `
namespace A
{
    public class X { public int N { get; set; } }
    public class Y { public int N { get; set; } }
}
`,
			reason: "ambiguous class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.src)
			if err == nil {
				t.Fatal("expected a structural error, got nil")
			}
			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Fatalf("expected StructuralError, got %T: %v", err, err)
			}
			if serr.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, serr.Reason)
			}
		})
	}
}
