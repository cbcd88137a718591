// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/slukits/gocase/pkg/assert"
)

// State is the lifecycle state of an invocation:
//
//	Pending -> FixturesResolving -> BodyRunning -> Passed|Failed
//	        -> TearingDown -> Finalized
//
// A failing fixture setup moves an invocation from FixturesResolving
// directly to Failed and an invocation canceled before it started from
// Pending to Failed.  TearingDown is always entered.
type State int

const (
	Pending State = iota
	FixturesResolving
	BodyRunning
	Passed
	Failed
	TearingDown
	Finalized
)

var stateNames = []string{"pending", "fixtures-resolving",
	"body-running", "passed", "failed", "tearing-down", "finalized"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// transitions maps a state to the states it may be left for.
var transitions = map[State][]State{
	Pending:           {FixturesResolving, Failed},
	FixturesResolving: {BodyRunning, Failed},
	BodyRunning:       {Passed, Failed},
	Passed:            {TearingDown},
	Failed:            {TearingDown},
	TearingDown:       {Finalized},
}

const (
	// AssertionKind is the diagnostic kind of a failed assertion.
	AssertionKind = "assertion"

	// UnexpectedKind is the diagnostic kind of an error or panic no
	// assertion expected.
	UnexpectedKind = "unexpected"
)

// Diagnostic is the plain record of why an invocation failed.
type Diagnostic struct {
	Message string
	Kind    string
	Cause   error
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// UnexpectedError is an error returned or panicked by a body or a
// fixture setup which no assertion expected.
type UnexpectedError struct {

	// Kind is the dynamic type of the error or panic value.
	Kind string

	// Message of the error or the formatted panic value.
	Message string

	// Err is the unexpected error; nil for panics with a non-error
	// value.
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected %s: %s", e.Kind, e.Message)
}

// Unwrap returns the unexpected error.
func (e *UnexpectedError) Unwrap() error { return e.Err }

// diagnose turns a value recovered at the invocation boundary or an
// error of a fixture setup into a diagnostic.
func diagnose(r interface{}) *Diagnostic {
	switch r := r.(type) {
	case *assert.Failure:
		return &Diagnostic{Message: r.Error(), Kind: AssertionKind, Cause: r}
	case error:
		u := &UnexpectedError{
			Kind: assert.KindOf(r), Message: r.Error(), Err: r}
		return &Diagnostic{Message: u.Error(), Kind: UnexpectedKind, Cause: u}
	}
	u := &UnexpectedError{Kind: fmt.Sprintf("%T", r),
		Message: fmt.Sprintf("panic: %v", r)}
	return &Diagnostic{Message: u.Error(), Kind: UnexpectedKind, Cause: u}
}

// Result is the record of one invocation of a case.  It is modified
// only by the invocation's runner and read-only once its invocation is
// Finalized.
type Result struct {
	cs, id     string
	invocation string
	state      State
	verdict    State
	history    []State
	diagnostic *Diagnostic
	teardown   []error
	logs       []string
	start      time.Time
	duration   time.Duration
}

func newResult(cs, id string) *Result {
	return &Result{
		cs:         cs,
		id:         id,
		invocation: uuid.NewString(),
		state:      Pending,
		history:    []State{Pending},
		start:      time.Now(),
	}
}

// enter moves a result into given state.  It panics on a transition the
// state machine doesn't allow which is a bug of the runner.
func (r *Result) enter(s State) {
	if !slices.Contains(transitions[r.state], s) {
		panic(fmt.Sprintf("gocase: invocation %s: illegal transition %s -> %s",
			r.Name(), r.state, s))
	}
	r.state = s
	r.history = append(r.history, s)
	switch s {
	case Passed, Failed:
		r.verdict = s
	case Finalized:
		r.duration = time.Since(r.start)
	}
}

func (r *Result) fail(d *Diagnostic) {
	r.diagnostic = d
	r.enter(Failed)
}

// Case returns the name of the invoked case.
func (r *Result) Case() string { return r.cs }

// ID returns the display id of the invocation's parameter combination
// which is empty for cases without parameter axes.
func (r *Result) ID() string { return r.id }

// Name returns the case name followed by the bracketed id if any, e.g.
// "add[1-2-3]".
func (r *Result) Name() string {
	if r.id == "" {
		return r.cs
	}
	return fmt.Sprintf("%s[%s]", r.cs, r.id)
}

// Invocation returns the unique identifier of the invocation.
func (r *Result) Invocation() string { return r.invocation }

// State returns the current state of the invocation.
func (r *Result) State() State { return r.state }

// History returns the states the invocation went through.
func (r *Result) History() []State { return append([]State(nil), r.history...) }

// Passed returns true iff the invocation's body passed.  Teardown errors
// are reported alongside, they don't fail a passed invocation.
func (r *Result) Passed() bool { return r.verdict == Passed }

// Diagnostic returns the reason of a failed invocation; nil if it
// passed.
func (r *Result) Diagnostic() *Diagnostic { return r.diagnostic }

// TeardownErrs returns the errors of failed fixture cleanups.
func (r *Result) TeardownErrs() []error {
	return append([]error(nil), r.teardown...)
}

// Logs returns what the invocation logged through its T if it ran
// outside of go test.
func (r *Result) Logs() []string { return append([]string(nil), r.logs...) }

// Duration returns how long the invocation took until it was finalized.
func (r *Result) Duration() time.Duration { return r.duration }

// Report collects the results of a registry run.
type Report struct {

	// Results in order of registration and expansion.
	Results []*Result

	// Errs are the construction errors of skipped cases.
	Errs []error
}

// Passed returns true iff there are no construction errors, all
// invocations passed and no teardown failed.
func (r *Report) Passed() bool {
	if len(r.Errs) > 0 {
		return false
	}
	for _, res := range r.Results {
		if !res.Passed() || len(res.teardown) > 0 {
			return false
		}
	}
	return true
}

// Failed returns the results of failed invocations.
func (r *Report) Failed() []*Result {
	ff := []*Result{}
	for _, res := range r.Results {
		if !res.Passed() {
			ff = append(ff, res)
		}
	}
	return ff
}

// Get returns the result with given name (see Result.Name); nil if
// there is none.
func (r *Report) Get(name string) *Result {
	for _, res := range r.Results {
		if res.Name() == name {
			return res
		}
	}
	return nil
}
