package navio

import (
	"github.com/petrijr/navio/pkg/api"
)

// StepBuilder provides a fluent API for defining destination steps:
//
//	step := navio.NewStep("New").
//	    Prerequisite(navio.NavigateToSibling("All")).
//	    Do(clickAddNew).
//	    Definition()
//
//	nav.Register(Provider{}, step)
//
// or, registering directly:
//
//	navio.NewStep("All").
//	    AmIHere(onAllPage).
//	    Do(clickAll).
//	    Register(nav, Provider{})
type StepBuilder struct {
	def api.StepDefinition
}

// NewStep creates a new step builder for the given destination name.
// It panics if name is empty.
func NewStep(name string) *StepBuilder {
	if name == "" {
		panic("navio: step name must not be empty")
	}
	return &StepBuilder{
		def: api.StepDefinition{Name: name},
	}
}

// Name returns the destination name.
func (b *StepBuilder) Name() string {
	return b.def.Name
}

// AmIHere sets the idempotence check.
func (b *StepBuilder) AmIHere(fn CheckFunc) *StepBuilder {
	b.def.AmIHere = fn
	return b
}

// Prerequisite sets the prerequisite, typically one of the shortcut
// constructors or a custom PrerequisiteFunc.
func (b *StepBuilder) Prerequisite(fn PrerequisiteFunc) *StepBuilder {
	b.def.Prerequisite = fn
	return b
}

// Do sets the action that reaches the destination.
func (b *StepBuilder) Do(fn ActionFunc) *StepBuilder {
	b.def.Action = fn
	return b
}

// Resetter sets the routine restoring view state after every attempt
// path.
func (b *StepBuilder) Resetter(fn ResetFunc) *StepBuilder {
	b.def.Resetter = fn
	return b
}

// PreNavigate replaces the default retry guard with a custom hook.
func (b *StepBuilder) PreNavigate(fn HookFunc) *StepBuilder {
	b.def.PreNavigate = fn
	return b
}

// PostNavigate sets the hook run after each attempt completes.
func (b *StepBuilder) PostNavigate(fn HookFunc) *StepBuilder {
	b.def.PostNavigate = fn
	return b
}

// MaxTries overrides the retry bound used by the default retry guard.
// Non-positive values fall back to DefaultMaxTries.
func (b *StepBuilder) MaxTries(n int) *StepBuilder {
	b.def.MaxTries = n
	return b
}

// Definition returns the built StepDefinition. The builder can keep
// being used afterwards; the returned value is a copy.
func (b *StepBuilder) Definition() StepDefinition {
	return b.def
}

// Register registers the built step for owner on n and returns the
// definition as stored, mirroring the annotation-style registration
// convention where the registration hands the definition back unchanged.
func (b *StepBuilder) Register(n Navigator, owner any) StepDefinition {
	def := b.def
	n.Register(owner, def)
	return def
}

// RegisterAs is Register with an explicit destination name overriding
// the builder's.
func (b *StepBuilder) RegisterAs(n Navigator, owner any, name string) StepDefinition {
	def := b.def
	n.RegisterAs(owner, name, def)
	def.Name = name
	return def
}
