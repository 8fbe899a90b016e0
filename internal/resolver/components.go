package resolver

import (
	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
	"github.com/anvil-platform/wireplan/internal/token"
)

func (b *build) addComponents(decls []v1alpha1.ComponentDeclaration) error {
	for _, decl := range decls {
		desc, err := b.buildComponent(decl)
		if err != nil {
			return err
		}
		if err := b.register(desc); err != nil {
			return err
		}
	}
	return nil
}

func (b *build) buildComponent(decl v1alpha1.ComponentDeclaration) (v1alpha1.ComponentDescriptor, error) {
	var zero v1alpha1.ComponentDescriptor

	if decl.Abstract {
		return zero, diag.InvalidDeclaration(decl.Location,
			"abstract type %q cannot itself be a component", decl.Name)
	}
	if token.IsPrimitive(decl.Name) {
		return zero, diag.InvalidDeclaration(decl.Location,
			"primitive type %q cannot be declared as a component", decl.Name)
	}
	scope, err := normalizeScope(decl.Scope, decl.Eager, decl.Name, decl.Location)
	if err != nil {
		return zero, err
	}

	tok, hints := b.tokens.Resolve(v1alpha1.TypeRef{Name: decl.Name, Declaration: decl.Declaration})
	bag := token.Hints{}
	bag.Merge(hints)

	deps := make([]v1alpha1.Dependency, 0, len(decl.Params))
	for _, p := range decl.Params {
		dep, err := b.paramDependency(decl.Name, decl.Location, p, bag)
		if err != nil {
			return zero, err
		}
		deps = append(deps, dep)
	}

	fields := make([]v1alpha1.Dependency, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		dep, err := b.fieldDependency(decl.Name, decl.Location, f, bag)
		if err != nil {
			return zero, err
		}
		fields = append(fields, dep)
	}

	ancestors := make([]v1alpha1.Token, 0, len(decl.Extends))
	for _, ref := range decl.Extends {
		atok, ahints := b.tokens.Resolve(ref)
		bag.Merge(ahints)
		ancestors = append(ancestors, atok)
	}

	desc := v1alpha1.ComponentDescriptor{
		Token:             tok,
		Scope:             scope,
		Eager:             decl.Eager,
		Qualifier:         decl.Qualifier,
		Dependencies:      deps,
		FieldDependencies: fields,
		Ancestors:         ancestors,
		Metadata:          decl.Metadata,
		Lifecycle:         decl.Lifecycle,
		Location:          decl.Location,
	}
	if len(bag) > 0 {
		desc.TypeHints = map[string]string(bag)
	}
	return desc, nil
}

// paramDependency resolves one constructor-style parameter. Collection types
// resolve through their element; bare primitives are fatal in this position.
func (b *build) paramDependency(owner string, loc v1alpha1.SourceLocation, p v1alpha1.ParamDecl, bag token.Hints) (v1alpha1.Dependency, error) {
	ref := p.Type
	if ref.List {
		elem := ref
		elem.List = false
		elem.Expr = ""
		if len(elem.Args) == 0 && token.IsPrimitive(elem.Name) {
			return v1alpha1.Dependency{}, diag.UnresolvableType(loc,
				"parameter %q of %s: collections of primitive %s are not supported",
				p.Name, owner, elem.Name)
		}
		tok, hints := b.tokens.Resolve(elem)
		bag.Merge(hints)
		return v1alpha1.Dependency{Token: tok, Optional: p.Optional, Collection: true}, nil
	}

	if len(ref.Args) == 0 && token.IsPrimitive(ref.Name) {
		return v1alpha1.Dependency{}, diag.UnresolvableType(loc,
			"parameter %q of %s has primitive type %s, which cannot identify a component",
			p.Name, owner, ref.Name)
	}

	tok, hints := b.tokens.Resolve(ref)
	bag.Merge(hints)
	return v1alpha1.Dependency{Token: tok, Optional: p.Optional}, nil
}

// fieldDependency resolves one field injection site. An explicit qualifier
// becomes a synthetic token keyed by the qualifier verbatim; matching it to a
// concrete provider is deferred to the disambiguator.
func (b *build) fieldDependency(owner string, loc v1alpha1.SourceLocation, f v1alpha1.FieldDecl, bag token.Hints) (v1alpha1.Dependency, error) {
	if f.Qualifier != "" {
		return v1alpha1.Dependency{
			Token:    v1alpha1.SyntheticToken(f.Qualifier),
			Optional: f.Optional,
		}, nil
	}
	return b.paramDependency(owner, loc, v1alpha1.ParamDecl{
		Name:     f.Name,
		Type:     f.Type,
		Optional: f.Optional,
	}, bag)
}

func normalizeScope(s v1alpha1.Scope, eager bool, name string, loc v1alpha1.SourceLocation) (v1alpha1.Scope, error) {
	switch s {
	case "":
		s = v1alpha1.ScopeSingleton
	case v1alpha1.ScopeSingleton, v1alpha1.ScopePrototype:
	default:
		return "", diag.InvalidDeclaration(loc, "unknown scope %q on %s", s, name)
	}
	if eager && s == v1alpha1.ScopePrototype {
		return "", diag.InvalidDeclaration(loc,
			"%s cannot be both eager and prototype-scoped", name)
	}
	return s, nil
}
