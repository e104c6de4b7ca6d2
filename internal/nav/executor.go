package nav

import (
	"context"

	"github.com/petrijr/navio/pkg/api"
)

// run is one navigation in flight: the bound object, the resolved step
// definition, and the attempt state. A fresh run is created for every
// navigation, including every prerequisite sub-navigation, and is
// discarded when execute returns; nothing here is shared or reused.
type run struct {
	obj   any
	def   api.StepDefinition
	nav   *navigator
	runID string

	attempt      int
	prereqResult any
	lastErr      error
}

var _ api.Navigation = (*run)(nil)

func (r *run) Object() any             { return r.obj }
func (r *run) Destination() string     { return r.def.Name }
func (r *run) Attempt() int            { return r.attempt }
func (r *run) RunID() string           { return r.runID }
func (r *run) PrerequisiteResult() any { return r.prereqResult }

// Navigate lets prerequisites issue sub-navigations that keep this run's
// identity, so one logical navigation's whole prerequisite tree shares a
// RunID in observer events.
func (r *run) Navigate(ctx context.Context, objOrType any, name string, args ...any) error {
	return r.nav.navigate(ctx, r.runID, objOrType, name, args...)
}

func (r *run) info() api.NavigationInfo {
	return api.NavigationInfo{
		RunID:       r.runID,
		Destination: r.def.Name,
		ObjectType:  displayName(typeOf(r.obj)),
		Attempt:     r.attempt,
	}
}

// execute drives one attempt: pre-navigate guard, idempotence check,
// prerequisite, action, reset, post-navigate. Action failures recurse
// into execute with the incremented attempt count, so retries re-run the
// check and the prerequisite from scratch and the recursion depth is
// bounded by the retry guard.
func (r *run) execute(ctx context.Context, attempt int, args ...any) error {
	attempt++
	r.attempt = attempt

	if err := r.preNavigate(ctx, attempt, args...); err != nil {
		return err
	}

	here := false
	if r.def.AmIHere != nil {
		h, err := r.def.AmIHere(ctx, r, args...)
		if err != nil {
			// A broken check must not block forward progress: report it
			// and treat the answer as "not here". Action errors, by
			// contrast, feed the retry path; the asymmetry is
			// deliberate and load-bearing.
			r.nav.observer.OnCheckError(ctx, r.info(), err)
		} else {
			here = h
		}
	}

	if here {
		r.nav.observer.OnAlreadyHere(ctx, r.info())
	} else {
		if r.def.Prerequisite != nil {
			res, err := r.def.Prerequisite(ctx, r, args...)
			if err != nil {
				return err
			}
			r.prereqResult = res
		}
		if err := r.doNav(ctx, attempt, args...); err != nil {
			return err
		}
	}

	if r.def.Resetter != nil {
		if err := r.def.Resetter(ctx, r, args...); err != nil {
			return err
		}
	}

	if r.def.PostNavigate != nil {
		if err := r.def.PostNavigate(ctx, r, attempt, args...); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) doNav(ctx context.Context, attempt int, args ...any) error {
	if r.def.Action == nil {
		return nil
	}
	if err := r.def.Action(ctx, r, args...); err != nil {
		r.nav.observer.OnStepError(ctx, r.info(), err)
		r.lastErr = err
		return r.execute(ctx, attempt, args...)
	}
	return nil
}

// preNavigate runs the configured hook, or the default retry guard when
// none is set: once attempt exceeds the bound, fail with a
// TriesExceededError carrying the last action error as its cause.
func (r *run) preNavigate(ctx context.Context, attempt int, args ...any) error {
	if r.def.PreNavigate != nil {
		return r.def.PreNavigate(ctx, r, attempt, args...)
	}

	maxTries := r.def.MaxTries
	if maxTries <= 0 {
		maxTries = api.DefaultMaxTries
	}
	if attempt > maxTries {
		return &api.TriesExceededError{Name: r.def.Name, Cause: r.lastErr}
	}
	return nil
}
