// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

import (
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/slukits/gocase/pkg/assert"
	"github.com/slukits/gocase/pkg/fixture"
	"github.com/slukits/gocase/pkg/param"
)

// T instances are passed to the body of a case providing access to the
// invocation's parameters and fixtures as well as means for logging,
// assertion and cancellation:
//
//	r.Add(gocase.Case{
//	    Name:     "fixture_injection",
//	    Fixtures: []string{"sample_list"},
//	    Body: func(t *gocase.T) {
//	        t.Len(t.Fixture("sample_list"), 5)
//	    },
//	})
//
// A T is owned by its invocation; it must not be used after the body
// returned.
type T struct {
	t         *testing.T
	res       *Result
	comb      param.Combination
	ii        *fixture.Instances
	tolerance assert.Tolerance
	logger    func(...interface{})
	zl        *zap.Logger
	mutex     sync.Mutex
}

// GoT returns the wrapped go test of the invocation if it is run by
// RunT or Run; nil otherwise.
func (t *T) GoT() *testing.T { return t.t }

// Case returns the name of the invoked case.
func (t *T) Case() string { return t.res.cs }

// ID returns the display id of the invocation's parameter combination.
func (t *T) ID() string { return t.comb.ID }

// Invocation returns the unique identifier of the invocation.
func (t *T) Invocation() string { return t.res.invocation }

// Param returns the value bound to given parameter name.  An unbound
// name fails the invocation.
func (t *T) Param(name string) interface{} {
	v, ok := t.comb.Get(name)
	if !ok {
		assert.Failf("gocase: %s: unknown parameter %q", t.res.Name(), name)
	}
	return v
}

// Fixture returns the invocation's instance of given fixture which must
// be required by the case or one of its required fixtures.  An unknown
// name fails the invocation.
func (t *T) Fixture(name string) interface{} {
	var v interface{}
	ok := false
	if t.ii != nil {
		v, ok = t.ii.Get(name)
	}
	if !ok {
		assert.Failf("gocase: %s: fixture %q not required",
			t.res.Name(), name)
	}
	return v
}

// Get returns the parameter or else the fixture with given name as a
// value of type V.  A missing name or a value of an other type fails
// the invocation.
func Get[V any](t *T, name string) V {
	v, ok := t.comb.Get(name)
	if !ok {
		v = t.Fixture(name)
	}
	typed, ok := v.(V)
	if !ok {
		var zero V
		assert.Failf("gocase: %s: %q is %T, not %T",
			t.res.Name(), name, v, zero)
	}
	return typed
}

// Log writes given arguments to set logger which defaults to the logger
// of the wrapped go test or else the invocation's result (see
// Result.Logs).  The default may be overwritten by the registry option
// WithLog or a suite-embedder implementing the SuiteLogging interface.
func (t *T) Log(args ...interface{}) {
	switch {
	case t.logger != nil:
		t.logger(args...)
	case t.t != nil:
		t.t.Helper()
		t.t.Log(args...)
	default:
		msg := fmt.Sprint(args...)
		t.mutex.Lock()
		t.res.logs = append(t.res.logs, msg)
		t.mutex.Unlock()
		t.zl.Debug("log", zap.String("msg", msg))
	}
}

// Logf writes given format string leveraging Sprintf to set logger (see
// Log).
func (t *T) Logf(format string, args ...interface{}) {
	t.Log(fmt.Sprintf(format, args...))
}

// Parallel signals that this invocation may be run in parallel with
// other parallel flagged go tests.  It is a no-op outside of go test.
func (t *T) Parallel() {
	if t.t != nil {
		t.t.Parallel()
	}
}

// FailNow fails the invocation and stops the execution of its body.
// The invocation's teardown still runs.
func (t *T) FailNow() { assert.Fail("failed now") }

// Fatal fails the invocation with given arguments as message (see
// FailNow).
func (t *T) Fatal(args ...interface{}) { assert.Fail(args...) }

// Fatalf fails the invocation with given format-string formatted by
// fmt.Sprintf as message (see FailNow).
func (t *T) Fatalf(format string, args ...interface{}) {
	assert.Failf(format, args...)
}

// FatalOn fails the invocation with given error's message iff it is not
// nil.
func (t *T) FatalOn(err error) {
	if err == nil {
		return
	}
	assert.Fail(err.Error())
}
