// Package diag defines the fatal diagnostics a resolution run can raise. The
// pipeline is fail-fast: the first diagnostic aborts the run and no plan is
// produced.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
)

// Kind names one of the distinct fatal conditions.
type Kind string

const (
	KindUnresolvableType   Kind = "UnresolvableType"
	KindMissingProvider    Kind = "MissingProvider"
	KindAmbiguousProvider  Kind = "AmbiguousProvider"
	KindCircularDependency Kind = "CircularDependency"
	KindInvalidDeclaration Kind = "InvalidDeclaration"
)

// Diagnostic is a fatal resolution failure with enough context to act on:
// a source location, candidate or cycle names where relevant, and a hint.
type Diagnostic struct {
	Kind       Kind
	Message    string
	Hint       string
	Location   v1alpha1.SourceLocation
	Candidates []string
	Path       []string
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString(string(d.Kind))
	b.WriteString(": ")
	b.WriteString(d.Message)
	if loc := d.Location.String(); loc != "" {
		b.WriteString(" (")
		b.WriteString(loc)
		b.WriteString(")")
	}
	if len(d.Path) > 0 {
		b.WriteString("; cycle: ")
		b.WriteString(strings.Join(d.Path, " -> "))
	}
	if len(d.Candidates) > 0 {
		b.WriteString("; candidates: ")
		b.WriteString(strings.Join(d.Candidates, ", "))
	}
	if d.Hint != "" {
		b.WriteString("; hint: ")
		b.WriteString(d.Hint)
	}
	return b.String()
}

// As unwraps err into a Diagnostic, if it carries one.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

const (
	hintUnresolvable = "use a concrete nominal type, or annotate with an explicit qualifier or token"
	hintMissing      = "register the missing component or add it to a grouping"
	hintAmbiguous    = "add distinguishing qualifiers or names"
	hintCycle        = "break the cycle via an optional dependency or restructure"
	hintImportCycle  = "remove the cyclic import"
	hintInvalid      = "fix the declaration"
	hintRename       = "rename the parameter to match exactly one producing method"
)

// UnresolvableType reports a primitive in dependency position or a primitive
// collection element.
func UnresolvableType(loc v1alpha1.SourceLocation, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:     KindUnresolvableType,
		Message:  fmt.Sprintf(format, args...),
		Hint:     hintUnresolvable,
		Location: loc,
	}
}

// AmbiguousPrimitive reports primitive factory wiring with several producing
// methods and no unique name match.
func AmbiguousPrimitive(loc v1alpha1.SourceLocation, param, typeName string, candidates []string) *Diagnostic {
	return &Diagnostic{
		Kind:       KindUnresolvableType,
		Message:    fmt.Sprintf("parameter %q: several factory methods produce %s", param, typeName),
		Hint:       hintRename,
		Location:   loc,
		Candidates: candidates,
	}
}

// MissingProvider reports a required dependency with no registered component.
func MissingProvider(loc v1alpha1.SourceLocation, tok v1alpha1.Token, owner string) *Diagnostic {
	return &Diagnostic{
		Kind:     KindMissingProvider,
		Message:  fmt.Sprintf("no provider registered for %q required by %s", tok.DisplayName(), owner),
		Hint:     hintMissing,
		Location: loc,
	}
}

// AmbiguousProvider reports two or more candidates for one dependency.
func AmbiguousProvider(loc v1alpha1.SourceLocation, message string, candidates []string) *Diagnostic {
	return &Diagnostic{
		Kind:       KindAmbiguousProvider,
		Message:    message,
		Hint:       hintAmbiguous,
		Location:   loc,
		Candidates: candidates,
	}
}

// CircularDependency reports a component-level cycle with its full path.
func CircularDependency(loc v1alpha1.SourceLocation, path []string) *Diagnostic {
	return &Diagnostic{
		Kind:     KindCircularDependency,
		Message:  "components form a dependency cycle",
		Hint:     hintCycle,
		Location: loc,
		Path:     path,
	}
}

// CircularImport reports a cycle among grouping imports.
func CircularImport(loc v1alpha1.SourceLocation, path []string) *Diagnostic {
	return &Diagnostic{
		Kind:     KindCircularDependency,
		Message:  "grouping imports form a cycle",
		Hint:     hintImportCycle,
		Location: loc,
		Path:     path,
	}
}

// InvalidDeclaration reports structurally invalid annotation usage.
func InvalidDeclaration(loc v1alpha1.SourceLocation, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:     KindInvalidDeclaration,
		Message:  fmt.Sprintf(format, args...),
		Hint:     hintInvalid,
		Location: loc,
	}
}
