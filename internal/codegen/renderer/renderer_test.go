package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogentools/bogen/internal/codegen/meta"
)

func customerModel() *meta.ClassModel {
	return &meta.ClassModel{
		Namespace: "App.Models",
		Name:      "Customer",
		Properties: []meta.Property{
			{Name: "Name", Type: "string"},
			{Name: "Balance", Type: "decimal"},
		},
	}
}

func TestRenderBusinessObject(t *testing.T) {
	v, ok := Lookup("BO")
	require.True(t, ok)

	out, err := Render(customerModel(), v, "")
	require.NoError(t, err)

	assert.Contains(t, out, "public class CustomerBO : BusinessBase<CustomerBO>")
	assert.Contains(t, out, "namespace App.Models")
	assert.Contains(t, out, "using Csla;")
	assert.Contains(t, out, "using Csla.Core;")
	assert.Contains(t, out, "using App.Models;")
	assert.Contains(t, out, "[Serializable]")
	assert.Contains(t, out, "public static readonly PropertyInfo<string> NameProperty = RegisterProperty<string>(c => c.Name);")
	assert.Contains(t, out, "get { return GetProperty(NameProperty); }")
	assert.Contains(t, out, "set { SetProperty(NameProperty, value); }")
	assert.NotContains(t, out, "private set", "business object setter must be public")

	// Property blocks keep declaration order.
	assert.Less(t, strings.Index(out, "NameProperty"), strings.Index(out, "BalanceProperty"))

	// Only newline padding is trimmed, nothing else.
	assert.True(t, strings.HasPrefix(out, "using Csla;"))
	assert.True(t, strings.HasSuffix(out, "}"))
}

func TestRenderReadOnlyObject(t *testing.T) {
	v, _ := Lookup("Info")

	out, err := Render(customerModel(), v, "")
	require.NoError(t, err)

	assert.Contains(t, out, "public class CustomerInfo : ReadOnlyBase<CustomerInfo>")
	assert.Contains(t, out, "private set { LoadProperty(NameProperty, value); }")
	assert.NotContains(t, out, "SetProperty")
}

func TestRenderListVariants(t *testing.T) {
	el, _ := Lookup("EL")
	out, err := Render(customerModel(), el, "")
	require.NoError(t, err)
	assert.Contains(t, out, "public class CustomerEL : BusinessListBase<CustomerEL, CustomerBO, Customer>")
	assert.Contains(t, out, "public CustomerEL()")
	assert.NotContains(t, out, "RegisterProperty", "list variants do not repeat property content")
	assert.NotContains(t, out, "Csla.Core")

	rl, _ := Lookup("RL")
	out, err = Render(customerModel(), rl, "")
	require.NoError(t, err)
	assert.Contains(t, out, "public class CustomerRL : ReadOnlyListBase<CustomerRL, CustomerInfo, Customer>")
}

func TestRenderNamespaceOverride(t *testing.T) {
	v, _ := Lookup("BO")

	out, err := Render(customerModel(), v, "Solution.BusinessLibrary.BO.Customer")
	require.NoError(t, err)

	assert.Contains(t, out, "namespace Solution.BusinessLibrary.BO.Customer")
	assert.Contains(t, out, "using App.Models;", "originating namespace stays imported")
	assert.NotContains(t, out, "namespace App.Models")
}

func TestRenderIsDeterministic(t *testing.T) {
	v, _ := Lookup("BO")
	model := customerModel()

	first, err := Render(model, v, "")
	require.NoError(t, err)
	second, err := Render(model, v, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpand(t *testing.T) {
	suffixes := func(vs []Variant) []string {
		var out []string
		for _, v := range vs {
			out = append(out, v.Suffix)
		}
		return out
	}

	all, err := Expand([]string{"All"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BO", "Info", "EL", "RL"}, suffixes(all))

	// Generation order is fixed regardless of request order.
	some, err := Expand([]string{"RL", "BO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BO", "RL"}, suffixes(some))

	// Duplicates collapse.
	dup, err := Expand([]string{"BO", "All", "BO"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BO", "Info", "EL", "RL"}, suffixes(dup))

	_, err = Expand([]string{"XX"})
	assert.Error(t, err)
}
