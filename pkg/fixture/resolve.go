// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixture

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"

	"github.com/slukits/gocase/pkg/errs"
)

// Instances are the fixture values materialized for one invocation.
// They are owned by that invocation and must be torn down exactly once.
type Instances struct {
	arena      *Arena
	invocation string
	created    []string // fixture names in instantiation order
	cleanups   map[string]Cleanup
	partial    string // failed fixture whose provider returned a cleanup
	provided   []string // names available to the invocation's body
}

// values is the view of a provider on the instances of its invocation
// restricted to its declared dependencies.
type values struct {
	ii   *Instances
	deps []string
}

func (vv values) Get(name string) interface{} {
	if !slices.Contains(vv.deps, name) {
		return nil
	}
	v, _ := vv.ii.arena.Get(vv.ii.invocation, name)
	return v
}

func (vv values) Invocation() string { return vv.ii.invocation }

// Resolve instantiates the fixtures of given plan (see Plan) for given
// invocation in plan order storing their values in given arena.  Each
// call creates fresh values.  If a provider fails or panics the
// instantiation stops and the error is returned together with the
// instances created so far which still must be torn down.  A cleanup
// returned along with a provider's error is torn down first.
func (r *Registry) Resolve(
	a *Arena, invocation string, plan []string,
) (*Instances, error) {
	ii := &Instances{
		arena:      a,
		invocation: invocation,
		cleanups:   map[string]Cleanup{},
		provided:   plan,
	}
	for _, name := range plan {
		d, ok := r.defs[name]
		if !ok {
			return ii, errs.Constructionf("fixture", name, "unknown")
		}
		v, cleanup, err := provide(d, values{ii: ii, deps: d.Deps})
		if err != nil {
			if cleanup != nil {
				ii.partial, ii.cleanups[name] = name, cleanup
			}
			return ii, errors.Wrapf(err, "fixture %q", name)
		}
		a.Set(invocation, name, v)
		ii.created = append(ii.created, name)
		if cleanup != nil {
			ii.cleanups[name] = cleanup
		}
	}
	return ii, nil
}

func provide(d *Definition, vv Values) (
	v interface{}, c Cleanup, err error,
) {
	defer func() {
		if r := recover(); r != nil {
			v, c, err = nil, nil, panicErr(r)
		}
	}()
	return d.provide(vv)
}

func panicErr(r interface{}) error {
	if err, ok := r.(error); ok {
		return errors.Wrap(err, "panic")
	}
	return errors.Errorf("panic: %v", r)
}

// Get returns the value of given fixture for the invocation of
// receiving instances and true; false if it wasn't planned or created.
func (ii *Instances) Get(name string) (interface{}, bool) {
	if !slices.Contains(ii.provided, name) {
		return nil, false
	}
	return ii.arena.Get(ii.invocation, name)
}

// Created returns the names of the instantiated fixtures in order of
// their instantiation.
func (ii *Instances) Created() []string {
	return append([]string(nil), ii.created...)
}

// Teardown runs the cleanups of the instantiated scoped fixtures in
// reverse order of instantiation.  A failing or panicking cleanup
// doesn't stop the remaining ones; all their errors are combined into
// the returned error, each of them an *errs.Teardown (see
// multierr.Errors).  Finally the instances are released from their
// arena.
func (ii *Instances) Teardown() (err error) {
	defer ii.arena.Release(ii.invocation)
	order := ii.created
	if ii.partial != "" {
		order = append(append([]string(nil), order...), ii.partial)
	}
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		cleanup, ok := ii.cleanups[name]
		if !ok {
			continue
		}
		delete(ii.cleanups, name)
		if cErr := runCleanup(cleanup); cErr != nil {
			err = multierr.Append(err, &errs.Teardown{
				Fixture: name, Err: cErr})
		}
	}
	return err
}

func runCleanup(c Cleanup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicErr(r)
		}
	}()
	return c()
}
