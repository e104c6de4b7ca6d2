package nav

import (
	"reflect"
	"sync"
)

// hierarchy computes the ordered ancestor list for context object types.
//
// Parents come from two sources: explicit declarations via setParents, or,
// absent those, the type's embedded anonymous struct fields in declaration
// order. Linearization is depth-first, left-to-right, keeping the first
// occurrence of each type, so for D with parents (B, C) both embedding A
// the order is D, B, A, C. Linearizations are cached per type; setParents
// drops the cache, which is fine because hierarchy edits happen at setup
// time only.
type hierarchy struct {
	mu      sync.RWMutex
	parents map[reflect.Type][]reflect.Type
	cache   map[reflect.Type][]reflect.Type
}

func newHierarchy() *hierarchy {
	return &hierarchy{
		parents: make(map[reflect.Type][]reflect.Type),
		cache:   make(map[reflect.Type][]reflect.Type),
	}
}

// typeOf normalizes a context argument to the type lookups key on: a
// reflect.Type is used as given, anything else contributes its dynamic
// type, and pointers are stripped down to their element type. A nil
// argument yields a nil type, which linearizes to nothing.
func typeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	if t, ok := v.(reflect.Type); ok {
		return normalize(t)
	}
	return normalize(reflect.TypeOf(v))
}

func normalize(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// displayName matches the type naming used in errors and observer events.
func displayName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func (h *hierarchy) setParents(child any, parents ...any) {
	ct := typeOf(child)
	if ct == nil {
		return
	}

	pts := make([]reflect.Type, 0, len(parents))
	for _, p := range parents {
		if pt := typeOf(p); pt != nil {
			pts = append(pts, pt)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.parents[ct] = pts
	// Any cached linearization may now be stale, not just the child's:
	// the child can appear in other types' ancestor lists.
	h.cache = make(map[reflect.Type][]reflect.Type)
}

// linearize returns t's ancestors, most-derived first (t itself leading).
func (h *hierarchy) linearize(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}

	h.mu.RLock()
	cached, ok := h.cache[t]
	h.mu.RUnlock()
	if ok {
		return cached
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if cached, ok := h.cache[t]; ok {
		return cached
	}

	seen := make(map[reflect.Type]bool)
	var order []reflect.Type
	h.walk(t, seen, &order)
	h.cache[t] = order
	return order
}

func (h *hierarchy) walk(t reflect.Type, seen map[reflect.Type]bool, order *[]reflect.Type) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true
	*order = append(*order, t)
	for _, p := range h.parentsOf(t) {
		h.walk(p, seen, order)
	}
}

// parentsOf must be called with at least a read lock held.
func (h *hierarchy) parentsOf(t reflect.Type) []reflect.Type {
	if explicit, ok := h.parents[t]; ok {
		return explicit
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var embedded []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if et := normalize(f.Type); et != nil {
				embedded = append(embedded, et)
			}
		}
	}
	return embedded
}
