package resolver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/anvil-platform/wireplan/internal/diag"
	"github.com/anvil-platform/wireplan/internal/metrics"
)

// DefaultResolver is the default pipeline implementation: component building,
// module expansion, qualifier and subtype disambiguation, validation, and
// topological ordering. The first diagnostic aborts the run.
type DefaultResolver struct {
	log *zap.Logger
}

// Option configures a DefaultResolver.
type Option func(*DefaultResolver)

// WithLogger attaches a logger for per-stage debug output.
func WithLogger(log *zap.Logger) Option {
	return func(r *DefaultResolver) {
		if log != nil {
			r.log = log
		}
	}
}

func NewDefault(opts ...Option) *DefaultResolver {
	r := &DefaultResolver{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *DefaultResolver) Resolve(ctx context.Context, in Input) (Plan, error) {
	_ = ctx // runs complete in-memory and are not cancellable mid-flight

	start := time.Now()
	metrics.RunStarted()

	plan, err := newBuild(r.log).run(in)
	if err != nil {
		kind := "error"
		if d, ok := diag.As(err); ok {
			kind = string(d.Kind)
		}
		metrics.RunFailed(kind)
		r.log.Debug("resolution failed", zap.String("kind", kind), zap.Error(err))
		return Plan{}, err
	}

	metrics.RunCompleted(time.Since(start), len(plan.Components))
	return plan, nil
}
