// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/slukits/gocase/pkg/assert"
	"github.com/slukits/gocase/pkg/errs"
	"github.com/slukits/gocase/pkg/fixture"
	"github.com/slukits/gocase/pkg/param"
)

// Case is a test definition: a body which is invoked once for each
// combination of its parameter axes with fresh instances of the
// fixtures it requires.
type Case struct {

	// Name identifies a case within its registry.
	Name string

	// Body is the test implementation.
	Body func(*T)

	// Fixtures are the names of the fixtures Body requires.
	Fixtures []string

	// Axes are the parameter axes Body is repeated over whereas the
	// first axis is the outer loop of their Cartesian product.
	Axes []*param.Axis

	// SetUp runs after the fixtures were resolved and before Body.
	SetUp func(*T)

	// TearDown runs after Body and before the fixture cleanups if
	// SetUp or Body was started.
	TearDown func(*T)
}

// registered is a validated copy of a case along with its fixture
// instantiation plan.
type registered struct {
	Case
	plan []string
}

// Registry holds cases and the fixtures they require.  Registration
// must be finished before a registry is run.
type Registry struct {
	fixtures  *fixture.Registry
	arena     fixture.Arena
	cases     []*registered
	names     map[string]bool
	errs      []error
	logger    *zap.Logger
	log       func(...interface{})
	workers   int
	tolerance assert.Tolerance
	filter    *regexp.Regexp
}

// Option configures a registry.
type Option func(*Registry)

// WithLogger sets the structured logger invocations report their state
// transitions to; it defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLog replaces the function T.Log writes to.
func WithLog(log func(...interface{})) Option {
	return func(r *Registry) { r.log = log }
}

// WithWorkers sets the number of invocations Run may execute
// concurrently; it defaults to 1.
func WithWorkers(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithTolerance sets the tolerance T.Approx applies if it isn't given
// tolerance options.
func WithTolerance(t assert.Tolerance) Option {
	return func(r *Registry) { r.tolerance = t }
}

// WithFilter restricts Run and RunT to the cases whose name is matched
// by given regular expression.
func WithFilter(re *regexp.Regexp) Option {
	return func(r *Registry) { r.filter = re }
}

// NewRegistry returns a new registry configured by given options.
func NewRegistry(oo ...Option) *Registry {
	r := &Registry{
		fixtures:  fixture.NewRegistry(),
		names:     map[string]bool{},
		logger:    zap.NewNop(),
		workers:   1,
		tolerance: assert.DefaultTolerance,
	}
	for _, o := range oo {
		o(r)
	}
	return r
}

// Fixture registers given fixture definition.  A registration error is
// also remembered (see Errs).
func (r *Registry) Fixture(d *fixture.Definition) error {
	if err := r.fixtures.Add(d); err != nil {
		r.errs = append(r.errs, err)
		return err
	}
	return nil
}

// Add registers a copy of given case.  A case without name or body, a
// name which is already taken, an unknown or cyclic fixture requirement
// and an invalid parameter axis are construction errors.  The case is
// skipped then while its error is remembered (see Errs); other cases
// are not affected.
func (r *Registry) Add(c Case) error {
	rc, err := r.validate(c)
	if err != nil {
		err = errs.WrapConstruction("case", c.Name, err)
		r.errs = append(r.errs, err)
		return err
	}
	r.names[c.Name] = true
	r.cases = append(r.cases, rc)
	return nil
}

func (r *Registry) validate(c Case) (*registered, error) {
	switch {
	case c.Name == "":
		return nil, errs.Constructionf("case", "", "missing name")
	case c.Body == nil:
		return nil, errs.Constructionf("case", c.Name, "missing body")
	case r.names[c.Name]:
		return nil, errs.Constructionf("case", c.Name, "already registered")
	}
	plan, err := r.fixtures.Plan(c.Fixtures...)
	if err != nil {
		return nil, err
	}
	if _, err := param.Expand(c.Axes...); err != nil {
		return nil, err
	}
	c.Fixtures = append([]string(nil), c.Fixtures...)
	c.Axes = append([]*param.Axis(nil), c.Axes...)
	return &registered{Case: c, plan: plan}, nil
}

// Errs returns the construction errors of the registrations so far.
func (r *Registry) Errs() []error { return append([]error(nil), r.errs...) }

// Cases returns the names of the registered cases in order of
// registration.
func (r *Registry) Cases() []string {
	nn := []string{}
	for _, c := range r.cases {
		nn = append(nn, c.Name)
	}
	return nn
}

func (r *Registry) get(name string) (*registered, error) {
	for _, c := range r.cases {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errs.Constructionf("case", name, "unknown")
}

// Expand returns a new expansion of the parameter axes of the case with
// given name (see param.Expand).
func (r *Registry) Expand(name string) (*param.Expansion, error) {
	c, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return param.Expand(c.Axes...)
}

// Resolve instantiates the fixtures required by the case with given
// name for given invocation in dependency order.  The returned
// instances must be torn down, even if an error is returned.
func (r *Registry) Resolve(
	name, invocation string,
) (*fixture.Instances, error) {
	c, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return r.fixtures.Resolve(&r.arena, invocation, c.plan)
}

func (r *Registry) selected(c *registered) bool {
	return r.filter == nil || r.filter.MatchString(c.Name)
}
