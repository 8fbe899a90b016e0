package resolver

import (
	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
	"github.com/anvil-platform/wireplan/internal/graph"
)

// order produces the final dependency-before-dependent permutation.
//
// Collection dependencies contribute no ordering edge (the runtime only needs
// all providers registered, not a particular instantiation order), and edges to
// unregistered tokens are skipped: validation has already established those are
// acceptable optional absences.
func (b *build) order() ([]v1alpha1.ComponentDescriptor, error) {
	tokens := make([]v1alpha1.Token, len(b.comps))
	for i := range b.comps {
		tokens[i] = b.comps[i].Token
	}

	edges := func(t v1alpha1.Token) []v1alpha1.Token {
		c := &b.comps[b.index[t]]
		out := make([]v1alpha1.Token, 0, len(c.Dependencies)+len(c.FieldDependencies))
		collect := func(deps []v1alpha1.Dependency) {
			for _, dep := range deps {
				if dep.Collection || !b.registered(dep.Token) {
					continue
				}
				out = append(out, dep.Token)
			}
		}
		collect(c.Dependencies)
		collect(c.FieldDependencies)
		return out
	}
	display := func(t v1alpha1.Token) string {
		return b.comps[b.index[t]].DisplayName()
	}

	sorted, cerr := graph.Sort(tokens, edges, display)
	if cerr != nil {
		loc := v1alpha1.SourceLocation{}
		for i := range b.comps {
			if b.comps[i].DisplayName() == cerr.Path[0] {
				loc = b.comps[i].Location
				break
			}
		}
		return nil, diag.CircularDependency(loc, cerr.Path)
	}

	out := make([]v1alpha1.ComponentDescriptor, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, b.comps[b.index[t]])
	}
	return out, nil
}
