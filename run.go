// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/slukits/gocase/pkg/param"
)

// Run invokes each selected case once per combination of its parameter
// axes and returns the report of all invocations.  Up to the
// configured number of workers invocations run concurrently; a failing
// invocation never affects its siblings.  Once given context is done no
// more invocations are started, the remaining ones fail with the
// context's error.
func (r *Registry) Run(ctx context.Context) *Report {
	type job struct {
		c    *registered
		comb param.Combination
	}
	jobs := []job{}
	for _, c := range r.cases {
		if !r.selected(c) {
			continue
		}
		xp, err := param.Expand(c.Axes...)
		if err != nil { // validated at registration
			panic(err)
		}
		for comb, ok := xp.Next(); ok; comb, ok = xp.Next() {
			jobs = append(jobs, job{c: c, comb: comb})
		}
	}

	rpt := &Report{Results: make([]*Result, len(jobs)), Errs: r.Errs()}
	g := errgroup.Group{}
	g.SetLimit(r.workers)
	for i, j := range jobs {
		j, res := j, newResult(j.c.Name, j.comb.ID)
		rpt.Results[i] = res
		g.Go(func() error {
			r.invoke(ctx, res, j.c, j.comb, nil)
			return nil
		})
	}
	_ = g.Wait()
	return rpt
}

// RunT runs the selected cases of given registry as sub-tests of given
// go test: each case is a sub-test and each of its parameter
// combinations a sub-test of the case.  Failed invocations and teardown
// errors are reported as errors of their sub-test.  Construction errors
// of the registry are reported as errors of t.
func RunT(t *testing.T, r *Registry) {
	t.Helper()
	for _, err := range r.Errs() {
		t.Error(err)
	}
	for _, c := range r.cases {
		if !r.selected(c) {
			continue
		}
		c := c
		t.Run(c.Name, func(t *testing.T) {
			xp, err := param.Expand(c.Axes...)
			if err != nil {
				t.Fatal(err)
			}
			for comb, ok := xp.Next(); ok; comb, ok = xp.Next() {
				if comb.ID == "" {
					invokeT(t, r, c, comb)
					continue
				}
				comb := comb
				t.Run(comb.ID, func(t *testing.T) {
					invokeT(t, r, c, comb)
				})
			}
		})
	}
}

// invokeT runs an invocation for given go test and reports its failure
// and teardown errors as errors of that test.
func invokeT(
	t *testing.T, r *Registry, c *registered, comb param.Combination,
) {
	t.Helper()
	res := newResult(c.Name, comb.ID)
	r.invoke(context.Background(), res, c, comb, t)
	if d := res.Diagnostic(); d != nil {
		t.Error(d.Message)
	}
	for _, err := range res.TeardownErrs() {
		t.Error(err)
	}
}

// invoke runs given pending result's invocation of given case with
// given parameter combination through all states of its lifecycle.
// Its teardown is deferred, i.e. it runs even if the body's goroutine
// is exited, e.g. by given go test's FailNow.  Fixture cleanups and
// finalization are deferred separately from the case's TearDown hook
// which may exit the goroutine too.
func (r *Registry) invoke(
	ctx context.Context,
	res *Result,
	c *registered,
	comb param.Combination,
	goT *testing.T,
) {
	log := r.logger.With(zap.String("case", c.Name),
		zap.String("id", comb.ID), zap.String("invocation", res.invocation))
	t := &T{
		t: goT, res: res, comb: comb,
		tolerance: r.tolerance, logger: r.log, zl: log,
	}
	bodyStarted, hookExited := false, false
	defer func() {
		if hookExited {
			res.teardown = append(res.teardown,
				errors.Wrap(ErrExited, "tear down"))
		}
		if t.ii != nil {
			if err := t.ii.Teardown(); err != nil {
				res.teardown = append(res.teardown, multierr.Errors(err)...)
			}
		}
		res.enter(Finalized)
		log.Debug("finalized", zap.Stringer("verdict", res.verdict),
			zap.Int("teardown-errors", len(res.teardown)),
			zap.Duration("duration", res.duration))
	}()
	defer func() {
		if res.state == BodyRunning {
			res.fail(diagnose(ErrExited))
		}
		res.enter(TearingDown)
		log.Debug("tearing down", zap.Stringer("verdict", res.verdict))
		if bodyStarted && c.TearDown != nil {
			hookExited = true
			if d := call(c.TearDown, t); d != nil {
				res.teardown = append(res.teardown, d.Cause)
			}
			hookExited = false
		}
	}()

	if err := ctx.Err(); err != nil {
		res.fail(diagnose(err))
		return
	}
	res.enter(FixturesResolving)
	log.Debug("resolving fixtures", zap.Strings("plan", c.plan))
	ii, err := r.fixtures.Resolve(&r.arena, res.invocation, c.plan)
	t.ii = ii
	if err != nil {
		log.Debug("fixture setup failed", zap.Error(err))
		res.fail(diagnose(err))
		return
	}

	res.enter(BodyRunning)
	bodyStarted = true
	if c.SetUp != nil {
		if d := call(c.SetUp, t); d != nil {
			res.fail(d)
			return
		}
	}
	if d := call(c.Body, t); d != nil {
		log.Debug("body failed", zap.String("diagnostic", d.String()))
		res.fail(d)
		return
	}
	res.enter(Passed)
}

// call calls given function with given T and turns a recovered panic
// into a diagnostic.
func call(f func(*T), t *T) (d *Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			d = diagnose(r)
		}
	}()
	f(t)
	return nil
}

// ErrExited is the cause of a failed invocation whose body's goroutine
// was exited, e.g. by a FailNow of the wrapped go test.
var ErrExited = errors.New("body goroutine exited before it returned")
