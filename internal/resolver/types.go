package resolver

import (
	"github.com/anvil-platform/wireplan/api/v1alpha1"
)

// Input is the scanner-normalized view of one source tree.
//
// The resolver treats it as read-only reference data for the duration of a run.
type Input struct {
	Components []v1alpha1.ComponentDeclaration
	Modules    []v1alpha1.ModuleDeclaration
}

// Plan is the output of a successful run: every descriptor's required
// dependency tokens appear as some other descriptor's token in the same list,
// and the list is in dependency-before-dependent order.
//
// Warnings carry non-fatal observations (e.g. a skipped unresolvable grouping
// import) for the caller to surface.
type Plan struct {
	Components []v1alpha1.ComponentDescriptor `json:"components"`
	Warnings   []string                       `json:"warnings,omitempty"`
}
