// Package nav implements the destination registry, type hierarchy
// linearization, and the per-navigation step executor behind the public
// Navigator API. External callers use the constructors re-exported by the
// root navio package.
package nav

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petrijr/navio/pkg/api"
)

// navigator is the dispatcher façade tying registry lookup to step
// execution.
type navigator struct {
	registry *registry
	observer api.Observer
}

var _ api.Navigator = (*navigator)(nil)

// New returns a Navigator with no observer attached (events are
// discarded).
func New() api.Navigator {
	return NewWithObserver(nil)
}

// NewWithObserver returns a Navigator that reports navigation lifecycle
// events to obs. A nil obs falls back to the discarding default.
func NewWithObserver(obs api.Observer) api.Navigator {
	if obs == nil {
		obs = api.NoopObserver{}
	}
	return &navigator{
		registry: newRegistry(),
		observer: obs,
	}
}

func (n *navigator) Register(owner any, def api.StepDefinition) {
	if def.Name == "" {
		panic("navio: step definition name must not be empty")
	}
	n.registry.register(owner, def)
}

func (n *navigator) RegisterAs(owner any, name string, def api.StepDefinition) {
	if name == "" {
		panic("navio: destination name must not be empty")
	}
	def.Name = name
	n.registry.register(owner, def)
}

func (n *navigator) Navigate(ctx context.Context, objOrType any, name string, args ...any) error {
	return n.navigate(ctx, uuid.NewString(), objOrType, name, args...)
}

// navigate is the recursion point shared by top-level calls and
// prerequisite sub-navigations; the latter pass their initiator's runID
// through run.Navigate.
func (n *navigator) navigate(ctx context.Context, runID string, objOrType any, name string, args ...any) error {
	def, err := n.registry.lookup(objOrType, name)
	if err != nil {
		return err
	}

	r := &run{
		obj:   objOrType,
		def:   def,
		nav:   n,
		runID: runID,
	}

	n.observer.OnNavigateStart(ctx, r.info())

	start := time.Now()
	if err := r.execute(ctx, 0, args...); err != nil {
		n.observer.OnNavigateFailed(ctx, r.info(), err, time.Since(start))
		return err
	}
	n.observer.OnNavigateCompleted(ctx, r.info(), time.Since(start))
	return nil
}

func (n *navigator) GetStep(objOrType any, name string) (api.StepDefinition, error) {
	return n.registry.lookup(objOrType, name)
}

func (n *navigator) ListDestinations(objOrType any) []string {
	return n.registry.list(objOrType)
}

func (n *navigator) SetParents(child any, parents ...any) {
	n.registry.hierarchy.setParents(child, parents...)
}
