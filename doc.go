// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gocase is a tiny test-assertion and fixture-resolution engine
// featuring
//   - plain assertions which stop a failing test body,
//   - parametrized cases repeated over the Cartesian product of
//     parameter axes,
//   - expected-failure assertions checking an error's kind and message,
//   - fixtures which may depend on each other, are created freshly for
//     each single invocation and are torn down after it no matter if it
//     failed.
//
// A case is registered at a Registry which knows the fixtures the case
// may require:
//
//	r := gocase.NewRegistry()
//	r.Fixture(fixture.Value("sample_list", func() interface{} {
//	    return []int{1, 2, 3, 4, 5}
//	}))
//	r.Add(gocase.Case{
//	    Name: "add",
//	    Axes: []*param.Axis{param.New("a, b, expected",
//	        param.V(1, 2, 3),
//	        param.V(0, 0, 0),
//	    )},
//	    Body: func(t *gocase.T) {
//	        t.Eq(add(t.Param("a").(int), t.Param("b").(int)),
//	            t.Param("expected"))
//	    },
//	})
//	r.Add(gocase.Case{
//	    Name:     "fresh_data",
//	    Fixtures: []string{"sample_list"},
//	    Body: func(t *gocase.T) {
//	        ll := gocase.Get[[]int](t, "sample_list")
//	        t.Len(append(ll, 6), 6)
//	    },
//	})
//
// Registration validates a case: an unknown fixture, a fixture
// dependency cycle, a parameter row whose width doesn't match its axis
// and colliding ids are construction errors which skip only the
// malformed case.  A registry is either run by a harness
//
//	report := r.Run(ctx)
//
// or as sub-tests of a go test
//
//	func TestTutorial(t *testing.T) { gocase.RunT(t, r) }
//
// Each invocation goes through the states Pending, FixturesResolving,
// BodyRunning, Passed or Failed, TearingDown and Finalized.  A failing
// assertion stops the remaining body while the teardown of the
// invocation's fixtures always runs, in reverse order of their
// instantiation.
//
// For go tests gocase also supports suites whose public methods are
// the cases:
//
//	type TestedSubject struct{ gocase.Suite }
//
//	func (s *TestedSubject) SetUp(t *gocase.T) { t.Parallel() }
//
//	func (s *TestedSubject) Should_have_tested_behavior(t *gocase.T) {
//	    // test implementation
//	}
//
//	func TestTestedSubject(t *testing.T) {
//	    t.Parallel()
//	    gocase.Run(&TestedSubject{}, t)
//	}
//
// The assertions of a T are those of the package assert which may be
// used directly as well.
package gocase
