package v1alpha1

// TypeRef is a raw type reference as the scanner saw it in source.
//
// Declaration is the identity of the declaring source unit ("" when the type is
// source-opaque, e.g. an interface with no reachable declaration). Args carry the
// type arguments of a parameterized instantiation, themselves raw references.
// List marks a collection type; Name/Args then describe the element type.
//
// Expr is the original source spelling. It is an optimization hint only (resolution
// memoization) and never participates in identity.
type TypeRef struct {
	Name        string    `json:"name"`
	Declaration string    `json:"declaration,omitempty"`
	Args        []TypeRef `json:"args,omitempty"`
	List        bool      `json:"list,omitempty"`
	Expr        string    `json:"expr,omitempty"`
}

// ParamDecl is a raw constructor or factory-method parameter.
type ParamDecl struct {
	Name     string  `json:"name"`
	Type     TypeRef `json:"type"`
	Optional bool    `json:"optional,omitempty"`
}

// FieldDecl is a raw field injection site.
//
// Qualifier, when set, is the literal name or token value the field was annotated
// with; the reference is then resolved against named providers, not by type.
type FieldDecl struct {
	Name      string  `json:"name"`
	Type      TypeRef `json:"type,omitempty"`
	Qualifier string  `json:"qualifier,omitempty"`
	Optional  bool    `json:"optional,omitempty"`
}

// ComponentDeclaration is a raw injectable class as extracted by the scanner.
//
// Extends lists the full transitive inheritance chain, nearest ancestor first.
type ComponentDeclaration struct {
	Name        string         `json:"name"`
	Declaration string         `json:"declaration,omitempty"`
	Abstract    bool           `json:"abstract,omitempty"`
	Scope       Scope          `json:"scope,omitempty"`
	Eager       bool           `json:"eager,omitempty"`
	Qualifier   string         `json:"qualifier,omitempty"`
	Extends     []TypeRef      `json:"extends,omitempty"`
	Params      []ParamDecl    `json:"params,omitempty"`
	Fields      []FieldDecl    `json:"fields,omitempty"`
	Lifecycle   Lifecycle      `json:"lifecycle,omitempty"`
	Metadata    Metadata       `json:"metadata,omitempty"`
	Location    SourceLocation `json:"location,omitempty"`
}

// FactoryDecl is a raw factory method inside a grouping.
type FactoryDecl struct {
	Name      string         `json:"name"`
	Returns   TypeRef        `json:"returns"`
	Params    []ParamDecl    `json:"params,omitempty"`
	Scope     Scope          `json:"scope,omitempty"`
	Eager     bool           `json:"eager,omitempty"`
	Qualifier string         `json:"qualifier,omitempty"`
	Metadata  Metadata       `json:"metadata,omitempty"`
	Location  SourceLocation `json:"location,omitempty"`
}

// ModuleDeclaration is a raw grouping of factory methods.
//
// Imports reference other groupings whose contents are expanded before this one.
type ModuleDeclaration struct {
	Name        string         `json:"name"`
	Declaration string         `json:"declaration,omitempty"`
	Imports     []TypeRef      `json:"imports,omitempty"`
	Factories   []FactoryDecl  `json:"factories,omitempty"`
	Location    SourceLocation `json:"location,omitempty"`
}

// ScanDocument is the on-disk form of one scanner run.
type ScanDocument struct {
	SchemaVersion string                 `json:"schemaVersion,omitempty"`
	Components    []ComponentDeclaration `json:"components,omitempty"`
	Modules       []ModuleDeclaration    `json:"modules,omitempty"`
}
