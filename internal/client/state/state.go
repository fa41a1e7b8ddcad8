// Package state holds the session state machine: an immutable State, the
// actions that move it and a pure Reduce function. Store wraps them in a
// concurrency-safe container with subscriptions.
package state

import "github.com/dmitrijs2005/authflow/internal/client/models"

// State is the session as seen by the UI. IsAuthenticated always equals
// User != nil.
type State struct {
	User            *models.User
	IsLoading       bool
	IsAuthenticated bool
}

// Initial is the state before the first restore: nobody signed in and a
// restore pending.
func Initial() State {
	return State{IsLoading: true}
}

// Action is a transition message accepted by Reduce.
type Action interface {
	action()
}

// BeginLoading marks an operation as in flight.
type BeginLoading struct{}

// LoadingFinished ends an operation that failed; auth fields are unchanged.
type LoadingFinished struct{}

// Authenticated installs a signed-in user.
type Authenticated struct{ User *models.User }

// Unauthenticated clears the user.
type Unauthenticated struct{}

// Restored installs the result of a restore, which may be nil.
type Restored struct{ User *models.User }

func (BeginLoading) action()    {}
func (LoadingFinished) action() {}
func (Authenticated) action()   {}
func (Unauthenticated) action() {}
func (Restored) action()        {}

// Reduce returns the state that follows s after a. Unknown actions leave s
// unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case BeginLoading:
		s.IsLoading = true
	case LoadingFinished:
		s.IsLoading = false
	case Authenticated:
		s = signedIn(a.User)
	case Unauthenticated:
		s = State{}
	case Restored:
		s = signedIn(a.User)
	}
	return s
}

func signedIn(u *models.User) State {
	return State{User: u, IsAuthenticated: u != nil}
}
