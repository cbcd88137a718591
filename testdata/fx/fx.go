// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides gocase test-fixture suites.
//
// Each test-fixture suite embeds the FixtureLog ensuring that all
// loggings during a suite's test runs are appended to the
// *Logs*-property which then can be evaluated after the suite's test
// runs.  Suites with failing suite-tests are meant to be run by
// gocase.RunSuite whose report can be investigated, e.g.:
//
//	fx := &fx.TestSetUpTearDown{}
//	rpt := gocase.RunSuite(context.Background(), fx)
//	t.False(rpt.Passed())
//	t.Eq(fx.Logs, "s1ts2t")
package fx

import (
	"fmt"
	"sync"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/fixture"
	"github.com/slukits/gocase/pkg/param"
)

// FixtureLog implements gocase.SuiteLogging appending everything a
// suite logs to its Logs property.
type FixtureLog struct {
	mutex sync.Mutex
	Logs  string
}

// Logger returns the function T.Log of the embedding suite writes to.
func (fl *FixtureLog) Logger() func(...interface{}) {
	return func(args ...interface{}) {
		fl.mutex.Lock()
		defer fl.mutex.Unlock()
		fl.Logs += fmt.Sprint(args...)
	}
}

// TestAllSuiteTestsAreRun logs Exp from its only suite-test.
type TestAllSuiteTestsAreRun struct {
	FixtureLog
	gocase.Suite
	Exp string
}

func (s *TestAllSuiteTestsAreRun) A_test(t *gocase.T) { t.Log(s.Exp) }

// TestSetUpTearDown logs "s" on SetUp, "t" on TearDown and the number
// of each of its suite-tests.  Its second suite-test fails.
type TestSetUpTearDown struct {
	FixtureLog
	gocase.Suite
}

func (s *TestSetUpTearDown) SetUp(t *gocase.T) { t.Log("s") }

func (s *TestSetUpTearDown) TearDown(t *gocase.T) { t.Log("t") }

func (s *TestSetUpTearDown) Test_1(t *gocase.T) { t.Log("1") }

func (s *TestSetUpTearDown) Test_2(t *gocase.T) {
	t.Log("2")
	t.True(false)
	t.Log("unreachable")
}

// TestFailingSetUp fails in its SetUp; its suite-test is never run
// while its TearDown is.
type TestFailingSetUp struct {
	FixtureLog
	gocase.Suite
}

func (s *TestFailingSetUp) SetUp(t *gocase.T) {
	t.Log("s")
	t.Fatal("set up failed")
}

func (s *TestFailingSetUp) TearDown(t *gocase.T) { t.Log("t") }

func (s *TestFailingSetUp) Test(t *gocase.T) { t.Log("unreachable") }

// TestFixtures provides a scoped fixture logging "+" when it is created
// and "-" when it is cleaned up.  Its suite-tests log their names.
type TestFixtures struct {
	FixtureLog
	gocase.Suite
}

func (s *TestFixtures) Fixtures() []*fixture.Definition {
	log := s.Logger()
	return []*fixture.Definition{
		fixture.NewScoped("resource",
			func(fixture.Values) (interface{}, fixture.Cleanup, error) {
				log("+")
				return &[]string{}, func() error {
					log("-")
					return nil
				}, nil
			}),
	}
}

func (s *TestFixtures) A(t *gocase.T) {
	r := gocase.Get[*[]string](t, "resource")
	*r = append(*r, "a")
	t.Log("A")
}

func (s *TestFixtures) B(t *gocase.T) {
	t.Len(*gocase.Get[*[]string](t, "resource"), 0)
	t.Log("B")
}

// TestParams repeats its suite-test Sum over a parameter axis and logs
// the ids of its invocations.
type TestParams struct {
	FixtureLog
	gocase.Suite
}

func (s *TestParams) Params() map[string][]*param.Axis {
	return map[string][]*param.Axis{
		"Sum": {param.New("a, b, sum", param.V(1, 2, 3), param.V(2, 2, 4))},
	}
}

func (s *TestParams) Sum(t *gocase.T) {
	t.Eq(gocase.Get[int](t, "a")+gocase.Get[int](t, "b"),
		gocase.Get[int](t, "sum"))
	t.Log(t.ID() + ";")
}

func (s *TestParams) Unparametrized(t *gocase.T) {
	t.Eq(t.ID(), "")
	t.Log("u;")
}
