package resolver

import (
	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
	"github.com/anvil-platform/wireplan/internal/graph"
	"github.com/anvil-platform/wireplan/internal/token"
)

// primCandidate is a factory method producing a primitive-typed output,
// tokenized by the method's name.
type primCandidate struct {
	method string
	module string
}

// expandModules flattens every grouping into the component set: one implicit
// singleton per grouping, plus one component per factory method with the
// grouping instance prepended as dependency zero. Imported groupings expand
// before their importers, and each grouping expands exactly once regardless of
// how many import paths reach it.
func (b *build) expandModules(mods []v1alpha1.ModuleDeclaration) error {
	if len(mods) == 0 {
		return nil
	}

	type entry struct {
		decl    *v1alpha1.ModuleDeclaration
		imports []v1alpha1.Token
	}
	byToken := make(map[v1alpha1.Token]*entry, len(mods))
	tokens := make([]v1alpha1.Token, 0, len(mods))

	for i := range mods {
		m := &mods[i]
		tok, _ := b.tokens.Resolve(v1alpha1.TypeRef{Name: m.Name, Declaration: m.Declaration})
		if _, ok := byToken[tok]; ok {
			return diag.InvalidDeclaration(m.Location,
				"grouping %q is declared more than once", m.Name)
		}
		byToken[tok] = &entry{decl: m}
		tokens = append(tokens, tok)
	}

	for _, tok := range tokens {
		e := byToken[tok]
		for _, imp := range e.decl.Imports {
			impTok, _ := b.tokens.Resolve(imp)
			if _, ok := byToken[impTok]; !ok {
				b.warn("grouping %s: skipping unresolvable import %q", e.decl.Name, token.Canonical(imp))
				continue
			}
			e.imports = append(e.imports, impTok)
		}
	}

	// Import cycles are fatal before any expansion happens; the sorted order
	// already gives imported-before-importer.
	sorted, cerr := graph.Sort(tokens,
		func(t v1alpha1.Token) []v1alpha1.Token { return byToken[t].imports },
		func(t v1alpha1.Token) string { return byToken[t].decl.Name })
	if cerr != nil {
		loc := v1alpha1.SourceLocation{}
		for _, t := range tokens {
			if byToken[t].decl.Name == cerr.Path[0] {
				loc = byToken[t].decl.Location
				break
			}
		}
		return diag.CircularImport(loc, cerr.Path)
	}

	primByType := make(map[string][]primCandidate)
	for _, t := range sorted {
		e := byToken[t]
		for _, f := range e.decl.Factories {
			if len(f.Returns.Args) == 0 && token.IsPrimitive(f.Returns.Name) {
				primByType[f.Returns.Name] = append(primByType[f.Returns.Name],
					primCandidate{method: f.Name, module: e.decl.Name})
			}
		}
	}

	for _, t := range sorted {
		e := byToken[t]

		modDesc := v1alpha1.ComponentDescriptor{
			Token:      t,
			Scope:      v1alpha1.ScopeSingleton,
			Provenance: v1alpha1.Provenance{Module: e.decl.Name},
			Location:   e.decl.Location,
		}
		for _, impTok := range e.imports {
			modDesc.Dependencies = append(modDesc.Dependencies, v1alpha1.Dependency{Token: impTok})
		}
		if err := b.register(modDesc); err != nil {
			return err
		}

		for _, f := range e.decl.Factories {
			desc, err := b.buildFactory(t, e.decl.Name, f, primByType)
			if err != nil {
				return err
			}
			if err := b.register(desc); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *build) buildFactory(modTok v1alpha1.Token, modName string, f v1alpha1.FactoryDecl, primByType map[string][]primCandidate) (v1alpha1.ComponentDescriptor, error) {
	var zero v1alpha1.ComponentDescriptor
	owner := modName + "." + f.Name

	scope, err := normalizeScope(f.Scope, f.Eager, owner, f.Location)
	if err != nil {
		return zero, err
	}

	bag := token.Hints{}
	tok := b.factoryToken(f, bag)

	// The grouping instance is always dependency zero.
	deps := make([]v1alpha1.Dependency, 0, len(f.Params)+1)
	deps = append(deps, v1alpha1.Dependency{Token: modTok})

	for _, p := range f.Params {
		var dep v1alpha1.Dependency
		if !p.Type.List && len(p.Type.Args) == 0 && token.IsPrimitive(p.Type.Name) {
			dep, err = b.primitiveParam(f.Location, p, primByType)
		} else {
			dep, err = b.paramDependency(owner, f.Location, p, bag)
		}
		if err != nil {
			return zero, err
		}
		deps = append(deps, dep)
	}

	desc := v1alpha1.ComponentDescriptor{
		Token:        tok,
		Scope:        scope,
		Eager:        f.Eager,
		Qualifier:    f.Qualifier,
		Dependencies: deps,
		Provenance:   v1alpha1.Provenance{Module: modName, Factory: f.Name},
		Metadata:     f.Metadata,
		Location:     f.Location,
	}
	if len(bag) > 0 {
		desc.TypeHints = map[string]string(bag)
	}
	return desc, nil
}

// factoryToken keys a factory-produced component. Primitive and source-opaque
// return types have no usable nominal identity, so the output is keyed by the
// producing method's name; everything else resolves like any other reference.
func (b *build) factoryToken(f v1alpha1.FactoryDecl, bag token.Hints) v1alpha1.Token {
	ret := f.Returns
	if len(ret.Args) == 0 && (ret.Declaration == "" || token.IsPrimitive(ret.Name)) {
		return v1alpha1.SyntheticToken(f.Name)
	}
	tok, hints := b.tokens.Resolve(ret)
	bag.Merge(hints)
	return tok
}

// primitiveParam wires a primitive-typed factory parameter to a producing
// method: a unique parameter-name match wins, else a sole candidate wins, else
// the wiring is ambiguous and fatal. With no candidate at all the parameter
// name is left as a placeholder for the named-qualifier pass or the validator.
func (b *build) primitiveParam(loc v1alpha1.SourceLocation, p v1alpha1.ParamDecl, primByType map[string][]primCandidate) (v1alpha1.Dependency, error) {
	candidates := primByType[p.Type.Name]
	if len(candidates) == 0 {
		return v1alpha1.Dependency{
			Token:    v1alpha1.SyntheticToken(p.Name),
			Optional: p.Optional,
		}, nil
	}

	var nameMatch *primCandidate
	nameMatches := 0
	for i := range candidates {
		if candidates[i].method == p.Name {
			nameMatch = &candidates[i]
			nameMatches++
		}
	}
	switch {
	case nameMatches == 1:
		return v1alpha1.Dependency{
			Token:    v1alpha1.SyntheticToken(nameMatch.method),
			Optional: p.Optional,
		}, nil
	case len(candidates) == 1:
		return v1alpha1.Dependency{
			Token:    v1alpha1.SyntheticToken(candidates[0].method),
			Optional: p.Optional,
		}, nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.module+"."+c.method)
	}
	return v1alpha1.Dependency{}, diag.AmbiguousPrimitive(loc, p.Name, p.Type.Name, names)
}
