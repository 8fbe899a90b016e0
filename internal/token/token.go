// Package token converts raw scanned type references into canonical identity
// tokens. Canonicalization is a pure function of structural shape so that two
// independent spellings of the same parameterized instantiation converge on one
// token anywhere in the source.
package token

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
)

// Hints map type names seen during canonicalization to their originating
// declarations. The resolver does not interpret them; they are carried on the
// descriptor for the emitter.
type Hints map[string]string

// Merge copies other into h, keeping existing entries on conflict.
func (h Hints) Merge(other Hints) {
	for name, decl := range other {
		if _, ok := h[name]; !ok {
			h[name] = decl
		}
	}
}

// memoSize bounds the per-resolver fast-path cache. Realistic graphs stay well
// under it; eviction only costs a re-canonicalization.
const memoSize = 1024

type memoEntry struct {
	tok   v1alpha1.Token
	hints Hints
}

// Resolver resolves raw type references to tokens for a single run.
//
// It memoizes by the raw reference's source spelling when the scanner supplies
// one. The memo is a fast path only: identity always comes from the structural
// canonical form, never from the spelling.
type Resolver struct {
	memo *lru.Cache[string, memoEntry]
}

// NewResolver returns a resolver with a fresh memo. Runs must not share one.
func NewResolver() *Resolver {
	cache, _ := lru.New[string, memoEntry](memoSize)
	return &Resolver{memo: cache}
}

// Canonical renders a raw reference's canonical structural key:
// name if there are no arguments, else name<arg, arg, ...> recursively.
func Canonical(ref v1alpha1.TypeRef) string {
	if len(ref.Args) == 0 {
		return ref.Name
	}
	var b strings.Builder
	b.WriteString(ref.Name)
	b.WriteByte('<')
	for i, arg := range ref.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Canonical(arg))
	}
	b.WriteByte('>')
	return b.String()
}

// Resolve converts a raw reference into a Token.
//
//   - Parameterized references become synthetic tokens keyed by the canonical
//     structural string; the returned hints record every (name, declaration)
//     pair encountered in the argument tree.
//   - Plain references with a known declaration become nominal tokens.
//   - Plain source-opaque references fall back to a synthetic token keyed by
//     the raw name alone.
//
// Primitive classification is positional and therefore left to callers; Resolve
// happily tokenizes a primitive name.
func (r *Resolver) Resolve(ref v1alpha1.TypeRef) (v1alpha1.Token, Hints) {
	key := memoKey(ref)
	if key != "" {
		if e, ok := r.memo.Get(key); ok {
			return e.tok, e.hints
		}
	}

	tok, hints := resolve(ref)
	if key != "" {
		r.memo.Add(key, memoEntry{tok: tok, hints: hints})
	}
	return tok, hints
}

func resolve(ref v1alpha1.TypeRef) (v1alpha1.Token, Hints) {
	if len(ref.Args) > 0 {
		hints := Hints{}
		collectHints(ref, hints)
		return v1alpha1.SyntheticToken(Canonical(ref)), hints
	}
	if ref.Declaration != "" {
		return v1alpha1.NominalToken(ref.Declaration, ref.Name), nil
	}
	return v1alpha1.SyntheticToken(ref.Name), nil
}

func collectHints(ref v1alpha1.TypeRef, hints Hints) {
	if ref.Declaration != "" {
		if _, ok := hints[ref.Name]; !ok {
			hints[ref.Name] = ref.Declaration
		}
	}
	for _, arg := range ref.Args {
		collectHints(arg, hints)
	}
}

func memoKey(ref v1alpha1.TypeRef) string {
	if ref.Expr == "" {
		return ""
	}
	return ref.Declaration + "|" + ref.Expr
}
