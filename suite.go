// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/slukits/gocase/pkg/fixture"
	"github.com/slukits/gocase/pkg/param"
)

// Suite implements the private methods of the SuiteEmbedder interface.
// I.e. if you want to run the tests of your own test-suite using
// *gocase.Run* you must embed this type, e.g.:
//
//	type MySuite struct { gocase.Suite }
//
//	// optional SetUp-method
//	// optional TearDown-method
//
//	// ... the suite-tests as methods of *MySuite ...
//
//	func TestMySuite(t *testing.T) { gocase.Run(&MySuite{}, t) }
type Suite struct {
	self            interface{}
	value           reflect.Value
	rtype           reflect.Type
	setUp, tearDown *reflect.Method
}

// init initializes this suite's reused reflection values and finds its
// special methods if any.
func (s *Suite) init(self interface{}) *Suite {
	s.self = self
	s.value = reflect.ValueOf(self)
	s.rtype = reflect.TypeOf(self)
	for i := 0; i < s.rtype.NumMethod(); i++ {
		m := s.rtype.Method(i)
		switch m.Name {
		case "SetUp":
			s.setUp = &m
		case "TearDown":
			s.tearDown = &m
		}
	}
	return s
}

const special = "SetUpTearDown"

// SuiteEmbedder is automatically implemented by embedding a
// Suite-instance.  I.e.:
//
//	type MySuite struct{ gocase.Suite }
//
// implements the SuiteEmbedder-interface's private methods.
type SuiteEmbedder interface {
	init(interface{}) *Suite
}

// Run turns all methods of given test-suite embedder which are public,
// have exactly one argument and are not special into cases of a new
// registry configured by given options and runs them as sub-tests of
// given go test (see RunT).  NOTE the reflection of suite-embedder
// methods could be more specific, e.g. the argument must be of type
// *gocase.T*.  To keep generated overhead at a minimum all methods
// with exactly one argument are considered tests unless they are
// special (or private):
//
// - SetUp(*gocase.T): run before every suite-test
//
// - TearDown(*gocase.T): run after every suite-test, also a failed one
//
// A suite implementing SuiteFixtures has its fixtures resolved for each
// suite-test; a suite implementing SuiteParams has its suite-tests
// repeated over the returned parameter axes.
func Run(suite SuiteEmbedder, t *testing.T, oo ...Option) {
	t.Helper()
	RunT(t, suiteRegistry(suite, oo...))
}

// RunSuite runs the suite-tests of given test-suite embedder outside of
// go test and returns their report (see Run and Registry.Run).
func RunSuite(
	ctx context.Context, suite SuiteEmbedder, oo ...Option,
) *Report {
	return suiteRegistry(suite, oo...).Run(ctx)
}

// suiteRegistry returns a new registry holding the suite-tests of given
// suite as cases.
func suiteRegistry(suite SuiteEmbedder, oo ...Option) *Registry {
	s := suite.init(suite)
	if l, ok := s.self.(SuiteLogging); ok {
		oo = append(oo, WithLog(l.Logger()))
	}
	r := NewRegistry(oo...)
	required := []string{}
	if sf, ok := s.self.(SuiteFixtures); ok {
		for _, d := range sf.Fixtures() {
			if r.Fixture(d) == nil {
				required = append(required, d.Name)
			}
		}
	}
	params := map[string][]*param.Axis{}
	if sp, ok := s.self.(SuiteParams); ok {
		params = sp.Params()
	}
	for i := 0; i < s.rtype.NumMethod(); i++ {
		method := s.rtype.Method(i)
		if method.Type.NumIn() != 2 {
			continue
		}
		if strings.Contains(special, method.Name) {
			continue
		}
		m := method
		_ = r.Add(Case{
			Name:     m.Name,
			Body:     s.caller(&m),
			Fixtures: required,
			Axes:     params[m.Name],
			SetUp:    s.caller(s.setUp),
			TearDown: s.caller(s.tearDown),
		})
	}
	return r
}

// caller returns a function calling given method of the suite; nil if
// method is nil.
func (s *Suite) caller(method *reflect.Method) func(*T) {
	if method == nil {
		return nil
	}
	return func(t *T) {
		method.Func.Call([]reflect.Value{s.value, reflect.ValueOf(t)})
	}
}

// SuiteLogging implementation of a suite-embedder overwrites provided
// logging mechanism of gocase.T-instances passed to suite-tests with
// provided function of the Logger-method. E.g.:
//
//	type MySuite {
//	    gocase.Suite
//	    Logs string
//	}
//
//	func (s *MySuite) Logger() func(...interface{}) {
//	    return func(args ...interface{}) {
//	        s.Logs += fmt.Sprint(args...)
//	    }
//	}
//
//	func (s *MySuite) A_test(t *gocase.T) {
//	    t.Log("A_test has run")
//	}
//
//	func TestMySuite(t *testing.T) {
//	    testSuite := &MySuite{}
//	    gocase.Run(testSuite, t)
//	    t.Log(testSuite.Logs) // prints "A_test has run" if verbose
//	}
type SuiteLogging interface {
	Logger() func(args ...interface{})
}

// SuiteFixtures implementation of a suite-embedder provides fixtures
// which are freshly instantiated for each of its suite-tests.
type SuiteFixtures interface {
	Fixtures() []*fixture.Definition
}

// SuiteParams implementation of a suite-embedder maps the names of
// suite-tests to the parameter axes they are repeated over.
type SuiteParams interface {
	Params() map[string][]*param.Axis
}
