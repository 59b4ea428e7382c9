// Package page assembles view-models out of upstream data. Every page runs its fetches as
// independent branches of a join, derives its model once all branches are done and tracks
// its lifecycle in a View. A View belongs to one consumer: the HTTP server makes one per
// request, so there a view settles exactly once, while a long-lived consumer reuses its view
// for parameter changes and gets ErrBusy while a load is in flight.
package page

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrBusy is returned by View.Load while a previous load of the same view is still running
var ErrBusy = errors.New("page is loading")

// State is the lifecycle state of a page
type State int

// page states, Idle is the zero value
const (
	Idle State = iota
	Loading
	Ready
	Failed
)

var stateNames = [...]string{"idle", "loading", "ready", "failed"}

// String returns the lower-case state name
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText implements encoding.TextMarshaler
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("unknown page state %q", text)
}

// LoadFunc produces page data for a parameter. Warnings describe branches that failed
// and were degraded to empty data; a non-nil error fails the whole page.
type LoadFunc[P, T any] func(ctx context.Context, param P) (data T, warnings []string, err error)

// Snapshot is a consistent copy of a view
type Snapshot[P, T any] struct {
	State    State    `json:"state"`
	Param    P        `json:"param"`
	Data     T        `json:"data"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// View is the explicit lifecycle of a single page: Idle -> Loading -> Ready | Failed.
// A parameter change is a new Load from Ready or Failed; Load while Loading is rejected.
type View[P, T any] struct {
	load LoadFunc[P, T]

	mu   sync.Mutex
	snap Snapshot[P, T]
}

// NewView makes an idle view backed by the given loader
func NewView[P, T any](load LoadFunc[P, T]) *View[P, T] {
	return &View[P, T]{load: load}
}

// Load enters Loading with the given parameter, runs the loader and settles in Ready or Failed.
// Data of a previous load is kept visible until the new one settles. Returns the settled snapshot.
func (v *View[P, T]) Load(ctx context.Context, param P) (Snapshot[P, T], error) {
	v.mu.Lock()
	if v.snap.State == Loading {
		v.mu.Unlock()
		return Snapshot[P, T]{}, ErrBusy
	}
	v.snap.State = Loading
	v.snap.Param = param
	v.snap.Error = ""
	v.snap.Warnings = nil
	v.mu.Unlock()

	data, warnings, err := v.load(ctx, param)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Warnings = warnings
	if err != nil {
		v.snap.State = Failed
		v.snap.Error = err.Error()
		var zero T
		v.snap.Data = zero
		return v.snap, nil
	}
	v.snap.State = Ready
	v.snap.Data = data
	return v.snap, nil
}

// Snapshot returns the current state of the view
func (v *View[P, T]) Snapshot() Snapshot[P, T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}

// State returns the current lifecycle state
func (v *View[P, T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap.State
}
