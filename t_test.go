// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/pkg/assert"
	"github.com/slukits/gocase/pkg/fixture"
	"github.com/slukits/gocase/pkg/param"
)

// invoke runs given body as the only case of a new registry configured
// by given options and returns the result of its only invocation.
func invoke(body func(*gocase.T), oo ...gocase.Option) *gocase.Result {
	r := gocase.NewRegistry(oo...)
	if err := r.Add(gocase.Case{Name: "case", Body: body}); err != nil {
		panic(err)
	}
	return r.Run(context.Background()).Results[0]
}

type _t struct{ gocase.Suite }

func (s *_t) SetUp(t *gocase.T) { t.Parallel() }

func (s *_t) Logs_to_its_result_outside_of_go_test(t *gocase.T) {
	res := invoke(func(tt *gocase.T) {
		tt.Log("a", 1)
		tt.Logf("%s-%d", "b", 2)
	})
	t.Eq(res.Logs(), []string{"a1", "b-2"})
}

func (s *_t) Logs_to_given_logger(t *gocase.T) {
	logs := []interface{}{}
	res := invoke(func(tt *gocase.T) { tt.Log("a") },
		gocase.WithLog(func(args ...interface{}) {
			logs = append(logs, args...)
		}))
	t.Eq(logs, []interface{}{"a"})
	t.Len(res.Logs(), 0)
}

func (s *_t) Has_no_go_test_outside_of_go_test(t *gocase.T) {
	var goT *testing.T
	invoke(func(tt *gocase.T) { goT = tt.GoT() })
	t.True(goT == nil)
	t.NotNil(t.GoT())
}

func (s *_t) Identifies_its_invocation(t *gocase.T) {
	var cs, invocation string
	res := invoke(func(tt *gocase.T) {
		cs, invocation = tt.Case(), tt.Invocation()
	})
	t.Eq(cs, "case")
	t.Eq(invocation, res.Invocation())
	t.Len(invocation, 36)
}

func (s *_t) Fails_its_invocation_on_fatal(t *gocase.T) {
	for msg, body := range map[string]func(*gocase.T){
		"failed now": func(tt *gocase.T) { tt.FailNow() },
		"fatal 1":    func(tt *gocase.T) { tt.Fatal("fatal ", 1) },
		"fatalf 2":   func(tt *gocase.T) { tt.Fatalf("fatalf %d", 2) },
		"on":         func(tt *gocase.T) { tt.FatalOn(errors.New("on")) },
		"not implemented yet": func(tt *gocase.T) { tt.TODO() },
		gocase.FalseErr:       func(tt *gocase.T) { tt.False(true) },
	} {
		res := invoke(body)
		t.False(res.Passed())
		t.Eq(res.Diagnostic().Message, msg)
		t.Eq(res.Diagnostic().Kind, gocase.AssertionKind)
	}
	t.True(invoke(func(tt *gocase.T) { tt.FatalOn(nil) }).Passed())
}

func (s *_t) Stops_the_body_at_a_failing_assertion(t *gocase.T) {
	reached := false
	res := invoke(func(tt *gocase.T) {
		tt.Eq(1, 2)
		reached = true
	})
	t.False(reached)
	t.Contains(res.Diagnostic().Message, "assert equal:")
}

func (s *_t) Defaults_true_messages_to_the_condition(t *gocase.T) {
	res := invoke(func(tt *gocase.T) {
		value := 3
		tt.True(value > 5)
	})
	t.Eq(res.Diagnostic().Message, "assert: value > 5")
}

func (s *_t) Fails_on_unknown_params_and_fixtures(t *gocase.T) {
	res := invoke(func(tt *gocase.T) { tt.Param("x") })
	t.Contains(res.Diagnostic().Message, `unknown parameter "x"`)
	res = invoke(func(tt *gocase.T) { tt.Fixture("x") })
	t.Contains(res.Diagnostic().Message, `fixture "x" not required`)
	res = invoke(func(tt *gocase.T) { gocase.Get[int](tt, "x") })
	t.Contains(res.Diagnostic().Message, `fixture "x" not required`)
}

func (s *_t) Gets_typed_params_and_fixtures(t *gocase.T) {
	r := gocase.NewRegistry()
	t.FatalOn(r.Fixture(fixture.Value("name", func() interface{} {
		return "go"
	})))
	t.FatalOn(r.Add(gocase.Case{
		Name:     "get",
		Fixtures: []string{"name"},
		Axes:     []*param.Axis{param.Values("n", 1)},
		Body: func(tt *gocase.T) {
			tt.Eq(gocase.Get[int](tt, "n"), 1)
			tt.Eq(tt.Param("n"), 1)
			tt.Eq(gocase.Get[string](tt, "name"), "go")
			tt.Eq(tt.Fixture("name"), "go")
			gocase.Get[string](tt, "n")
		},
	}))
	res := r.Run(context.Background()).Results[0]
	t.Contains(res.Diagnostic().Message, `"n" is int, not string`)
}

func (s *_t) Approximates_with_the_registry_s_tolerance(t *gocase.T) {
	body := func(tt *gocase.T) { tt.Approx(1.05, 1.0) }
	t.False(invoke(body).Passed())
	t.True(invoke(body,
		gocase.WithTolerance(assert.Tolerance{Rel: 0.1})).Passed())
	t.True(invoke(func(tt *gocase.T) {
		tt.Approx(1.05, 1.0, assert.Abs(0.1))
	}).Passed())
}

func (s *_t) Expects_failures(t *gocase.T) {
	res := invoke(func(tt *gocase.T) {
		r := tt.RaisesMatch(assert.Any(), "boom", func() error {
			return errors.New("boom")
		})
		tt.Eq(r.Message, "boom")
		tt.Raises(assert.Any(), func() error { return nil })
	})
	t.Contains(res.Diagnostic().Message, "none raised")
}

func TestT(t *testing.T) {
	t.Parallel()
	gocase.Run(&_t{}, t)
}
