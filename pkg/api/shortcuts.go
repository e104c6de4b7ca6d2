package api

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// NavigateToSibling returns a PrerequisiteFunc that navigates the same
// object to another destination on its own hierarchy.
//
// This makes it easy to write
//
//	navio.NewStep("New").
//	    Prerequisite(navio.NavigateToSibling("All"))
//
// instead of a hand-written prerequisite calling
// nav.Navigate(ctx, nav.Object(), "All").
func NavigateToSibling(target string) PrerequisiteFunc {
	return func(ctx context.Context, nav Navigation, args ...any) (any, error) {
		return nil, nav.Navigate(ctx, nav.Object(), target)
	}
}

// NavigateToAttribute returns a PrerequisiteFunc that reads the named
// attribute off the bound object and navigates that value to target.
//
// path may be dotted ("Parent.Owner"); each segment resolves to an
// exported struct field or a single-result niladic method, pointers being
// dereferenced along the way. A missing attribute is a prerequisite
// failure and aborts the navigation.
func NavigateToAttribute(path, target string) PrerequisiteFunc {
	return func(ctx context.Context, nav Navigation, args ...any) (any, error) {
		attr, err := attrValue(nav.Object(), path)
		if err != nil {
			return nil, err
		}
		return nil, nav.Navigate(ctx, attr, target)
	}
}

// NavigateToObject returns a PrerequisiteFunc that navigates a fixed,
// pre-supplied object to target, regardless of the object the current
// step is bound to.
//
// Deprecated: the target object is captured at definition time rather
// than derived from the executing navigation, which hides the dependency.
// Prefer NavigateToAttribute, or a custom PrerequisiteFunc that names its
// target object explicitly.
func NavigateToObject(obj any, target string) PrerequisiteFunc {
	return func(ctx context.Context, nav Navigation, args ...any) (any, error) {
		return nil, nav.Navigate(ctx, obj, target)
	}
}

// attrValue resolves a dotted attribute path against obj using
// reflection. Each segment is tried as a niladic single-result method
// first (covering pointer receivers), then as an exported struct field
// after dereferencing pointers.
func attrValue(obj any, path string) (any, error) {
	v := reflect.ValueOf(obj)
	for _, seg := range strings.Split(path, ".") {
		next, err := attrSegment(v, seg)
		if err != nil {
			return nil, fmt.Errorf("navio: resolving attribute %q on %T: %w", path, obj, err)
		}
		v = next
	}
	return v.Interface(), nil
}

func attrSegment(v reflect.Value, name string) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("cannot read %q from an invalid value", name)
	}

	if m := v.MethodByName(name); m.IsValid() {
		t := m.Type()
		if t.NumIn() == 0 && t.NumOut() == 1 {
			return m.Call(nil)[0], nil
		}
	}

	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("cannot read %q from a nil pointer", name)
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Struct {
		if f := v.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f, nil
		}
	}

	return reflect.Value{}, fmt.Errorf("type %s has no attribute %q", v.Type(), name)
}
