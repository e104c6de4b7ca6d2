package nav

import (
	"reflect"
	"sort"
	"sync"

	"github.com/petrijr/navio/pkg/api"
)

type destKey struct {
	owner reflect.Type
	name  string
}

// registry maps (owner type, destination name) keys to step definitions
// and answers hierarchy-aware lookups.
type registry struct {
	mu        sync.RWMutex
	steps     map[destKey]api.StepDefinition
	hierarchy *hierarchy
}

func newRegistry() *registry {
	return &registry{
		steps:     make(map[destKey]api.StepDefinition),
		hierarchy: newHierarchy(),
	}
}

// register records def under (owner's type, def.Name). Last write wins;
// re-registering a name at a more specific type is the override
// mechanism, re-registering at the same type is a plain replacement.
func (r *registry) register(owner any, def api.StepDefinition) {
	t := typeOf(owner)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps[destKey{owner: t, name: def.Name}] = def
}

// lookup walks objOrType's hierarchy most-derived first and returns the
// first definition registered under name. The subtype's registration
// shadows an ancestor's because the walk starts at the most specific
// type.
func (r *registry) lookup(objOrType any, name string) (api.StepDefinition, error) {
	t := typeOf(objOrType)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, anc := range r.hierarchy.linearize(t) {
		if def, ok := r.steps[destKey{owner: anc, name: name}]; ok {
			return def, nil
		}
	}

	return api.StepDefinition{}, &api.NotFoundError{
		Name:      name,
		TypeName:  displayName(t),
		Available: r.listLocked(t),
	}
}

// list returns the sorted set of destination names visible anywhere on
// objOrType's hierarchy. The walk runs most-general first; a more derived
// level can only contribute names, never remove them, so an overridden
// destination still reports its (single) name.
func (r *registry) list(objOrType any) []string {
	t := typeOf(objOrType)

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(t)
}

func (r *registry) listLocked(t reflect.Type) []string {
	ancestors := r.hierarchy.linearize(t)

	set := make(map[string]struct{})
	for i := len(ancestors) - 1; i >= 0; i-- {
		for key := range r.steps {
			if key.owner == ancestors[i] {
				set[key.name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
