package v1alpha1

// TokenKind distinguishes the two token variants.
type TokenKind string

const (
	// TokenNominal tokens are keyed by (declaring source identity, simple name).
	TokenNominal TokenKind = "nominal"
	// TokenSynthetic tokens are keyed by a canonical string.
	TokenSynthetic TokenKind = "synthetic"
)

// Token is the canonical identity of an injectable unit.
//
// Token equality is the sole criterion for "same component" throughout the
// pipeline: two source spellings that canonicalize to the same token are one
// component. The struct is comparable and safe to use as a map key.
type Token struct {
	Kind        TokenKind `json:"kind"`
	Declaration string    `json:"declaration,omitempty"`
	Name        string    `json:"name,omitempty"`
	Key         string    `json:"key,omitempty"`
}

// NominalToken builds a token for a plain declared type.
func NominalToken(declaration, name string) Token {
	return Token{Kind: TokenNominal, Declaration: declaration, Name: name}
}

// SyntheticToken builds a token keyed by a canonical string.
func SyntheticToken(key string) Token {
	return Token{Kind: TokenSynthetic, Key: key}
}

// DisplayName is the human-readable form used in diagnostics.
func (t Token) DisplayName() string {
	if t.Kind == TokenSynthetic {
		return t.Key
	}
	return t.Name
}

// IsZero reports whether the token is unset.
func (t Token) IsZero() bool {
	return t == Token{}
}

// Dependency is one resolved edge from a component to a Token.
//
// Optional absence resolves to an empty result at runtime, never an error.
// Collection dependencies accept the full provider set for the token instead of
// requiring exactly one provider.
type Dependency struct {
	Token      Token `json:"token"`
	Optional   bool  `json:"optional,omitempty"`
	Collection bool  `json:"collection,omitempty"`
}

// Provenance records which grouping and factory method produced a component.
type Provenance struct {
	Module  string `json:"module,omitempty"`
	Factory string `json:"factory,omitempty"`
}

// ComponentDescriptor is the resolved, validated unit of the wiring plan.
//
// Dependencies are constructor-style and ordered; FieldDependencies are applied
// after construction. Every non-optional, non-collection dependency token is
// guaranteed to appear as another descriptor's Token in the same plan, and the
// plan order is a valid topological order.
type ComponentDescriptor struct {
	Token             Token             `json:"token"`
	Scope             Scope             `json:"scope"`
	Eager             bool              `json:"eager,omitempty"`
	Qualifier         string            `json:"qualifier,omitempty"`
	Dependencies      []Dependency      `json:"dependencies,omitempty"`
	FieldDependencies []Dependency      `json:"fieldDependencies,omitempty"`
	Ancestors         []Token           `json:"ancestors,omitempty"`
	Provenance        Provenance        `json:"provenance,omitempty"`
	Metadata          Metadata          `json:"metadata,omitempty"`
	TypeHints         map[string]string `json:"typeHints,omitempty"`
	Lifecycle         Lifecycle         `json:"lifecycle,omitempty"`
	Location          SourceLocation    `json:"location,omitempty"`
}

// DisplayName identifies the component in diagnostics and cycle paths.
func (c ComponentDescriptor) DisplayName() string {
	return c.Token.DisplayName()
}
