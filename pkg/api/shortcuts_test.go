package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNavigation records the navigations a shortcut issues.
type stubNavigation struct {
	obj   any
	calls []navCall
	err   error
}

type navCall struct {
	obj  any
	name string
}

var _ Navigation = (*stubNavigation)(nil)

func (s *stubNavigation) Object() any             { return s.obj }
func (s *stubNavigation) Destination() string     { return "stub" }
func (s *stubNavigation) Attempt() int            { return 1 }
func (s *stubNavigation) RunID() string           { return "run-1" }
func (s *stubNavigation) PrerequisiteResult() any { return nil }

func (s *stubNavigation) Navigate(ctx context.Context, objOrType any, name string, args ...any) error {
	s.calls = append(s.calls, navCall{obj: objOrType, name: name})
	return s.err
}

type owner struct {
	Name   string
	Parent *holder
	hidden string
}

type holder struct {
	Label string
}

func (h *holder) Display() string { return "display:" + h.Label }

func TestNavigateToSibling_TargetsBoundObject(t *testing.T) {
	o := &owner{Name: "self"}
	nav := &stubNavigation{obj: o}

	_, err := NavigateToSibling("All")(context.Background(), nav)
	require.NoError(t, err)
	require.Len(t, nav.calls, 1)
	assert.Same(t, o, nav.calls[0].obj)
	assert.Equal(t, "All", nav.calls[0].name)
}

func TestNavigateToAttribute_TargetsAttributeValue(t *testing.T) {
	parent := &holder{Label: "p"}
	nav := &stubNavigation{obj: &owner{Parent: parent}}

	_, err := NavigateToAttribute("Parent", "All")(context.Background(), nav)
	require.NoError(t, err)
	require.Len(t, nav.calls, 1)
	assert.Same(t, parent, nav.calls[0].obj)
	assert.Equal(t, "All", nav.calls[0].name)
}

func TestNavigateToAttribute_DottedPath(t *testing.T) {
	nav := &stubNavigation{obj: &owner{Parent: &holder{Label: "deep"}}}

	_, err := NavigateToAttribute("Parent.Label", "All")(context.Background(), nav)
	require.NoError(t, err)
	require.Len(t, nav.calls, 1)
	assert.Equal(t, "deep", nav.calls[0].obj)
}

func TestNavigateToAttribute_MissingAttributeFails(t *testing.T) {
	nav := &stubNavigation{obj: &owner{}}

	_, err := NavigateToAttribute("NoSuchField", "All")(context.Background(), nav)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchField")
	assert.Empty(t, nav.calls, "no navigation should be issued when the attribute is missing")
}

func TestNavigateToObject_TargetsFixedObject(t *testing.T) {
	fixed := &holder{Label: "fixed"}
	nav := &stubNavigation{obj: &owner{}}

	_, err := NavigateToObject(fixed, "Setup")(context.Background(), nav)
	require.NoError(t, err)
	require.Len(t, nav.calls, 1)
	assert.Same(t, fixed, nav.calls[0].obj)
	assert.Equal(t, "Setup", nav.calls[0].name)
}

func TestAttrValue_Fields(t *testing.T) {
	o := &owner{Name: "n", Parent: &holder{Label: "l"}}

	got, err := attrValue(o, "Name")
	require.NoError(t, err)
	assert.Equal(t, "n", got)

	got, err = attrValue(o, "Parent.Label")
	require.NoError(t, err)
	assert.Equal(t, "l", got)
}

func TestAttrValue_NiladicMethod(t *testing.T) {
	o := &owner{Parent: &holder{Label: "x"}}

	got, err := attrValue(o, "Parent.Display")
	require.NoError(t, err)
	assert.Equal(t, "display:x", got)
}

func TestAttrValue_Errors(t *testing.T) {
	_, err := attrValue(&owner{}, "hidden")
	assert.Error(t, err, "unexported fields are not addressable attributes")

	_, err = attrValue(&owner{}, "Parent.Label")
	assert.Error(t, err, "nil pointers along the path fail cleanly")

	_, err = attrValue(42, "Anything")
	assert.Error(t, err)
}
