package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
)

func TestCanonical(t *testing.T) {
	user := v1alpha1.TypeRef{Name: "User", Declaration: "src/user.ts"}
	order := v1alpha1.TypeRef{Name: "Order", Declaration: "src/order.ts"}

	tests := []struct {
		name string
		ref  v1alpha1.TypeRef
		want string
	}{
		{"plain", user, "User"},
		{
			"single argument",
			v1alpha1.TypeRef{Name: "Repository", Args: []v1alpha1.TypeRef{user}},
			"Repository<User>",
		},
		{
			"two arguments",
			v1alpha1.TypeRef{Name: "Map", Args: []v1alpha1.TypeRef{{Name: "string"}, user}},
			"Map<string, User>",
		},
		{
			"nested arguments",
			v1alpha1.TypeRef{Name: "Cache", Args: []v1alpha1.TypeRef{
				{Name: "Repository", Args: []v1alpha1.TypeRef{order}},
			}},
			"Cache<Repository<Order>>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.ref))
		})
	}
}

func TestResolve_NominalToken(t *testing.T) {
	r := NewResolver()
	tok, hints := r.Resolve(v1alpha1.TypeRef{Name: "User", Declaration: "src/user.ts"})

	assert.Equal(t, v1alpha1.TokenNominal, tok.Kind)
	assert.Equal(t, "User", tok.Name)
	assert.Equal(t, "src/user.ts", tok.Declaration)
	assert.Empty(t, hints)
}

func TestResolve_OpaqueFallsBackToName(t *testing.T) {
	r := NewResolver()
	tok, _ := r.Resolve(v1alpha1.TypeRef{Name: "Logger"})

	assert.Equal(t, v1alpha1.TokenSynthetic, tok.Kind)
	assert.Equal(t, "Logger", tok.Key)
}

func TestResolve_ParameterizedIdempotent(t *testing.T) {
	r := NewResolver()
	ref := v1alpha1.TypeRef{
		Name: "Repository",
		Args: []v1alpha1.TypeRef{{Name: "User", Declaration: "src/user.ts"}},
	}
	// Same structure spelled two ways in two places.
	other := ref
	other.Expr = "Repository< User >"

	a, hintsA := r.Resolve(ref)
	b, hintsB := r.Resolve(other)

	require.Equal(t, a, b)
	assert.Equal(t, v1alpha1.TokenSynthetic, a.Kind)
	assert.Equal(t, "Repository<User>", a.Key)
	assert.Equal(t, Hints{"User": "src/user.ts"}, hintsA)
	assert.Equal(t, hintsA, hintsB)
}

func TestResolve_DistinctArgumentsDistinctKeys(t *testing.T) {
	r := NewResolver()
	a, _ := r.Resolve(v1alpha1.TypeRef{Name: "Repository", Args: []v1alpha1.TypeRef{{Name: "User", Declaration: "src/user.ts"}}})
	b, _ := r.Resolve(v1alpha1.TypeRef{Name: "Repository", Args: []v1alpha1.TypeRef{{Name: "Order", Declaration: "src/order.ts"}}})

	assert.NotEqual(t, a, b)
}

func TestResolve_MemoHitReturnsSameToken(t *testing.T) {
	r := NewResolver()
	ref := v1alpha1.TypeRef{
		Name: "List",
		Args: []v1alpha1.TypeRef{{Name: "User", Declaration: "src/user.ts"}},
		Expr: "List<User>",
	}

	first, _ := r.Resolve(ref)
	second, _ := r.Resolve(ref)
	require.Equal(t, first, second)
}

func TestResolve_HintsCollectTransitively(t *testing.T) {
	r := NewResolver()
	_, hints := r.Resolve(v1alpha1.TypeRef{
		Name: "Cache",
		Args: []v1alpha1.TypeRef{{
			Name:        "Repository",
			Declaration: "src/repository.ts",
			Args:        []v1alpha1.TypeRef{{Name: "Order", Declaration: "src/order.ts"}},
		}},
	})

	assert.Equal(t, Hints{
		"Repository": "src/repository.ts",
		"Order":      "src/order.ts",
	}, hints)
}

func TestIsPrimitive(t *testing.T) {
	for _, name := range []string{"string", "number", "boolean", "int", "float64"} {
		assert.True(t, IsPrimitive(name), name)
	}
	for _, name := range []string{"String", "User", "Repository", ""} {
		assert.False(t, IsPrimitive(name), name)
	}
}
