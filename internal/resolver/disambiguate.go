package resolver

import (
	"fmt"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
)

// disambiguate rewrites dependencies whose token did not resolve against a
// directly registered component. The named-qualifier pass runs to completion
// before the subtype pass, since a named rewrite can itself satisfy what would
// otherwise look like a missing nominal dependency.
func (b *build) disambiguate() error {
	if err := b.resolveNamed(); err != nil {
		return err
	}
	return b.resolveSubtypes()
}

// resolveNamed maps declared qualifier names to their components and rewrites
// unresolved synthetic tokens whose key matches exactly one declared name.
func (b *build) resolveNamed() error {
	byQualifier := make(map[string][]int)
	for i := range b.comps {
		if q := b.comps[i].Qualifier; q != "" {
			byQualifier[q] = append(byQualifier[q], i)
		}
	}

	rewrite := func(owner *v1alpha1.ComponentDescriptor, dep *v1alpha1.Dependency) error {
		if b.registered(dep.Token) || dep.Token.Kind != v1alpha1.TokenSynthetic {
			return nil
		}
		matches := byQualifier[dep.Token.Key]
		switch len(matches) {
		case 0:
			return nil
		case 1:
			dep.Token = b.comps[matches[0]].Token
			return nil
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, b.comps[m].DisplayName())
		}
		return diag.AmbiguousProvider(owner.Location,
			fmt.Sprintf("several components carry the name %q required by %s",
				dep.Token.Key, owner.DisplayName()),
			names)
	}
	return b.eachDependency(rewrite)
}

// resolveSubtypes maps every ancestor type to the components declaring it
// (nearest ancestor first per component) and rewrites unresolved nominal
// dependencies satisfied by exactly one concrete subtype. Collection
// dependencies are exempt: they take the full provider set at runtime.
func (b *build) resolveSubtypes() error {
	byAncestor := make(map[v1alpha1.Token][]int)
	for i := range b.comps {
		for _, anc := range b.comps[i].Ancestors {
			byAncestor[anc] = append(byAncestor[anc], i)
		}
	}

	rewrite := func(owner *v1alpha1.ComponentDescriptor, dep *v1alpha1.Dependency) error {
		if dep.Collection || b.registered(dep.Token) {
			return nil
		}
		matches := byAncestor[dep.Token]
		switch len(matches) {
		case 0:
			return nil
		case 1:
			dep.Token = b.comps[matches[0]].Token
			return nil
		}
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, b.comps[m].DisplayName())
		}
		return diag.AmbiguousProvider(owner.Location,
			fmt.Sprintf("several components extend %q required by %s",
				dep.Token.DisplayName(), owner.DisplayName()),
			names)
	}
	return b.eachDependency(rewrite)
}

// eachDependency visits every constructor and field dependency mutably.
func (b *build) eachDependency(fn func(owner *v1alpha1.ComponentDescriptor, dep *v1alpha1.Dependency) error) error {
	for i := range b.comps {
		owner := &b.comps[i]
		for j := range owner.Dependencies {
			if err := fn(owner, &owner.Dependencies[j]); err != nil {
				return err
			}
		}
		for j := range owner.FieldDependencies {
			if err := fn(owner, &owner.FieldDependencies[j]); err != nil {
				return err
			}
		}
	}
	return nil
}
