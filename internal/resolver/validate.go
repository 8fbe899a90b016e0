package resolver

import (
	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
)

// validate asserts that after disambiguation every non-optional, non-collection
// dependency token is present among the registered components. The first
// failing dependency aborts the run.
func (b *build) validate() error {
	for i := range b.comps {
		owner := &b.comps[i]
		for _, dep := range owner.Dependencies {
			if err := b.checkDependency(owner, dep); err != nil {
				return err
			}
		}
		for _, dep := range owner.FieldDependencies {
			if err := b.checkDependency(owner, dep); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *build) checkDependency(owner *v1alpha1.ComponentDescriptor, dep v1alpha1.Dependency) error {
	if dep.Optional || dep.Collection {
		return nil
	}
	if b.registered(dep.Token) {
		return nil
	}
	return diag.MissingProvider(owner.Location, dep.Token, owner.DisplayName())
}
