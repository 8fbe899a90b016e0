package v1alpha1

import "strconv"

// Scope controls how many instances the runtime injector creates for a component.
type Scope string

const (
	// ScopeSingleton components are constructed once and shared.
	ScopeSingleton Scope = "singleton"
	// ScopePrototype components are constructed per request.
	ScopePrototype Scope = "prototype"
)

// SourceLocation points at the declaration a diagnostic refers to.
//
// The scanner fills it in; the resolver only carries it through.
type SourceLocation struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// String renders "file:line:column", omitting trailing zero parts.
func (l SourceLocation) String() string {
	if l.File == "" {
		return ""
	}
	s := l.File
	if l.Line > 0 {
		s += ":" + strconv.Itoa(l.Line)
		if l.Column > 0 {
			s += ":" + strconv.Itoa(l.Column)
		}
	}
	return s
}

// IsZero reports whether the location carries no information.
func (l SourceLocation) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// Lifecycle lists the method names the runtime invokes around a component's life.
type Lifecycle struct {
	Init    []string `json:"init,omitempty"`
	Destroy []string `json:"destroy,omitempty"`
}
