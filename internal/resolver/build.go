package resolver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
	"github.com/anvil-platform/wireplan/internal/token"
)

// build is the mutable state of one resolution run. Components are held in a
// slice and addressed through the token index, so a disambiguation rewrite is a
// single field update with no aliasing hazards.
type build struct {
	log      *zap.Logger
	tokens   *token.Resolver
	comps    []v1alpha1.ComponentDescriptor
	index    map[v1alpha1.Token]int
	warnings []string
}

func newBuild(log *zap.Logger) *build {
	return &build{
		log:    log,
		tokens: token.NewResolver(),
		index:  make(map[v1alpha1.Token]int),
	}
}

func (b *build) run(in Input) (Plan, error) {
	if err := b.addComponents(in.Components); err != nil {
		return Plan{}, err
	}
	b.log.Debug("components built", zap.Int("declared", len(in.Components)))

	if err := b.expandModules(in.Modules); err != nil {
		return Plan{}, err
	}
	b.log.Debug("modules expanded",
		zap.Int("modules", len(in.Modules)),
		zap.Int("components", len(b.comps)))

	if err := b.disambiguate(); err != nil {
		return Plan{}, err
	}
	if err := b.validate(); err != nil {
		return Plan{}, err
	}

	ordered, err := b.order()
	if err != nil {
		return Plan{}, err
	}
	b.log.Debug("plan ordered", zap.Int("components", len(ordered)))

	return Plan{Components: ordered, Warnings: b.warnings}, nil
}

// register indexes a finished descriptor. Token collisions are declaration
// errors: two distinct declarations canonicalized to the same identity.
func (b *build) register(desc v1alpha1.ComponentDescriptor) error {
	if prev, ok := b.index[desc.Token]; ok {
		return diag.InvalidDeclaration(desc.Location,
			"component %q is declared more than once (previous declaration at %s)",
			desc.DisplayName(), b.comps[prev].Location)
	}
	b.index[desc.Token] = len(b.comps)
	b.comps = append(b.comps, desc)
	return nil
}

func (b *build) registered(tok v1alpha1.Token) bool {
	_, ok := b.index[tok]
	return ok
}

func (b *build) warn(format string, args ...any) {
	b.warnings = append(b.warnings, fmt.Sprintf(format, args...))
}
