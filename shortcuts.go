package navio

import (
	"github.com/petrijr/navio/pkg/api"
)

// NavigateToSibling returns a prerequisite that navigates the same
// object to another destination on its own hierarchy.
func NavigateToSibling(target string) PrerequisiteFunc {
	return api.NavigateToSibling(target)
}

// NavigateToAttribute returns a prerequisite that reads the named
// attribute (an exported field or niladic method, dotted paths allowed)
// off the bound object and navigates that value to target.
func NavigateToAttribute(path, target string) PrerequisiteFunc {
	return api.NavigateToAttribute(path, target)
}

// NavigateToObject returns a prerequisite that navigates a fixed,
// pre-supplied object to target.
//
// Deprecated: prefer NavigateToAttribute or a custom PrerequisiteFunc;
// see api.NavigateToObject.
func NavigateToObject(obj any, target string) PrerequisiteFunc {
	return api.NavigateToObject(obj, target)
}
